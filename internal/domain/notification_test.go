package domain

import "testing"

func TestNotification_VisibleTo(t *testing.T) {
	t.Parallel()

	global := Notification{ID: "n1"}
	mine := Notification{ID: "n2", UserID: ptr("u1")}
	theirs := Notification{ID: "n3", UserID: ptr("u2")}

	if !global.VisibleTo("u1") {
		t.Error("global notification should be visible to everyone")
	}
	if !mine.VisibleTo("u1") {
		t.Error("own notification should be visible")
	}
	if theirs.VisibleTo("u1") {
		t.Error("another user's notification should be hidden")
	}
}

func TestFilterVisible_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := []Notification{
		{ID: "a", UserID: ptr("u2")},
		{ID: "b"},
		{ID: "c", UserID: ptr("u1")},
		{ID: "d", UserID: ptr("u2")},
	}

	got := FilterVisible(items, "u1")
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("unexpected visible set: %+v", got)
	}
}
