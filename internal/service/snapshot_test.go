package service

import (
	"errors"
	"testing"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/metrics"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/secrets"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/view"
)

func TestBuildSnapshotMasksEveryCredential(t *testing.T) {
	sess := session.New(1, "admin@alif.id", false, 1024)
	snap, err := buildSnapshot(sess.ExportState())
	if err != nil {
		t.Fatal(err)
	}

	for _, tv := range snap.Teachers {
		if tv.Password != secrets.Masked {
			t.Fatalf("teacher %d password = %q, want mask", tv.ID, tv.Password)
		}
	}
	for _, pv := range snap.Staff {
		if pv.Password != secrets.Masked {
			t.Fatalf("staff %d password = %q, want mask", pv.ID, pv.Password)
		}
	}
	for _, sv := range snap.Students {
		if sv.Password != secrets.Masked {
			t.Fatalf("student %d password = %q, want mask", sv.ID, sv.Password)
		}
	}
}

func TestBuildSnapshotDisclosureStaysMasked(t *testing.T) {
	sess := session.New(1, "admin@alif.id", false, 1024)
	sess.ToggleDisclosure(model.KindTeacher, 1)

	snap, err := buildSnapshot(sess.ExportState())
	if err != nil {
		t.Fatal(err)
	}

	tv := snap.Teachers[0]
	if !tv.Disclosed {
		t.Fatal("disclosure flag missing")
	}
	// Disclosure is presentation-only: the value still never appears.
	if tv.Password != secrets.Masked {
		t.Fatalf("disclosed row leaked %q", tv.Password)
	}
}

func TestBuildSnapshotOccupancy(t *testing.T) {
	sess := session.New(1, "admin@alif.id", false, 1024)
	snap, err := buildSnapshot(sess.ExportState())
	if err != nil {
		t.Fatal(err)
	}

	// Fixture A1 is 15/15, B2 is 12/15.
	a1 := snap.Classes[0]
	if a1.OccupancyPct != 100 || a1.Occupancy != metrics.BucketGood {
		t.Fatalf("A1 occupancy = %d/%q", a1.OccupancyPct, a1.Occupancy)
	}
	b2 := snap.Classes[1]
	if b2.OccupancyPct != 80 || b2.Occupancy != metrics.BucketGood {
		t.Fatalf("B2 occupancy = %d/%q", b2.OccupancyPct, b2.Occupancy)
	}
}

func TestBuildSnapshotZeroCapacityErrors(t *testing.T) {
	st := session.State{
		ActiveView: view.Dashboard,
		Classes:    []model.ClassRecord{{ID: 1, Name: "X0", StudentCount: 0, Capacity: 0}},
	}
	if _, err := buildSnapshot(st); !errors.Is(err, metrics.ErrZeroCapacity) {
		t.Fatalf("expected ErrZeroCapacity, got %v", err)
	}
}

func TestBuildSnapshotReportBuckets(t *testing.T) {
	sess := session.New(1, "admin@alif.id", false, 1024)
	snap, err := buildSnapshot(sess.ExportState())
	if err != nil {
		t.Fatal(err)
	}

	if len(snap.Reports) != 3 {
		t.Fatalf("report count = %d", len(snap.Reports))
	}

	// A: 92/100, B: 88/85, C: 75/100.
	cases := []struct {
		idx        int
		attendance metrics.Bucket
		payment    metrics.Bucket
	}{
		{0, metrics.BucketGood, metrics.BucketGood},
		{1, metrics.BucketGood, metrics.BucketGood},
		{2, metrics.BucketWarn, metrics.BucketGood},
	}
	for _, c := range cases {
		r := snap.Reports[c.idx]
		if r.Attendance != c.attendance || r.Payment != c.payment {
			t.Errorf("report %q buckets = %q/%q, want %q/%q",
				r.ClassLabel, r.Attendance, r.Payment, c.attendance, c.payment)
		}
	}
}

func TestBuildSnapshotSelectedReport(t *testing.T) {
	sess := session.New(1, "admin@alif.id", false, 1024)
	if err := sess.OpenClassDetail(3); err != nil {
		t.Fatal(err)
	}

	snap, err := buildSnapshot(sess.ExportState())
	if err != nil {
		t.Fatal(err)
	}
	if snap.ActiveView != view.ClassDetail {
		t.Fatalf("view = %q", snap.ActiveView)
	}
	if snap.SelectedReport == nil || snap.SelectedReport.ClassLabel != "C" {
		t.Fatalf("selected report = %+v", snap.SelectedReport)
	}
	if snap.SelectedReport.Attendance != metrics.BucketWarn {
		t.Fatalf("C attendance bucket = %q", snap.SelectedReport.Attendance)
	}
}

func TestBuildDashboardCountsFollowCollections(t *testing.T) {
	sess := session.New(1, "admin@alif.id", false, 1024)
	sess.AddStudent(model.StudentRecord{
		Name:            "Caca N.",
		Age:             "5.0",
		Class:           model.WeakRef{ID: 1, Label: "A1"},
		GuardianContact: "0814XXXXXX",
		Credential:      model.CredentialRef{Username: "caca"},
	}, "caca789")

	snap, err := buildSnapshot(sess.ExportState())
	if err != nil {
		t.Fatal(err)
	}

	cards := snap.Dashboard.StatCards
	if cards[0].Title != "TOTAL MURID" || cards[0].Value != 3 {
		t.Fatalf("student card = %+v", cards[0])
	}
	if cards[1].Value != 3 { // 1 teacher + 2 staff
		t.Fatalf("guru & staff card = %+v", cards[1])
	}

	summary := snap.Dashboard.Summary
	if len(summary) != 3 {
		t.Fatalf("summary items = %d", len(summary))
	}
	if summary[1].Pct != 65 || summary[1].Bucket != metrics.BucketWarn {
		t.Fatalf("TUGAS summary = %+v", summary[1])
	}
}
