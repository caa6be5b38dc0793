package viewport

import "testing"

func TestInitialClassification(t *testing.T) {
	if NewObserver(1024).IsCompact() {
		t.Fatal("1024px should be regular layout")
	}
	if !NewObserver(500).IsCompact() {
		t.Fatal("500px should be compact layout")
	}
}

func TestThresholdBoundary(t *testing.T) {
	o := NewObserver(1024)

	if o.Observe(CompactWidthThreshold) {
		t.Fatalf("width == %d is not compact (strict less-than)", CompactWidthThreshold)
	}
	if !o.Observe(CompactWidthThreshold - 1) {
		t.Fatalf("width == %d should be compact", CompactWidthThreshold-1)
	}
}

func TestObserveFlipsImmediately(t *testing.T) {
	o := NewObserver(1024)

	if got := o.Observe(500); !got {
		t.Fatal("shrink below threshold must flip to compact")
	}
	if got := o.Observe(900); got {
		t.Fatal("growth above threshold must flip back immediately")
	}
}
