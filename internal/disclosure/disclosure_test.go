package disclosure

import (
	"testing"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
)

func TestDefaultHidden(t *testing.T) {
	c := NewController()
	if c.Visible(model.KindTeacher, 1) {
		t.Fatal("untouched key should be hidden")
	}
}

func TestToggleFlipsAndRestores(t *testing.T) {
	c := NewController()

	if got := c.Toggle(model.KindStudent, 2); !got {
		t.Fatal("first toggle should show")
	}
	if got := c.Toggle(model.KindStudent, 2); got {
		t.Fatal("second toggle should hide again")
	}
	if c.Visible(model.KindStudent, 2) {
		t.Fatal("double toggle must restore the hidden state")
	}
}

func TestToggleIsolation(t *testing.T) {
	c := NewController()
	c.Toggle(model.KindTeacher, 1)

	// Same id under a different kind is a different key.
	if c.Visible(model.KindStaff, 1) {
		t.Fatal("kinds must not share disclosure state")
	}
	// Same kind, different id.
	if c.Visible(model.KindTeacher, 2) {
		t.Fatal("ids must not share disclosure state")
	}
}
