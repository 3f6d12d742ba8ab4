package store

import (
	"errors"
	"testing"
	"time"
)

func TestCreateContactMessage_DefaultsAndNullableSubject(t *testing.T) {
	db := testDB(t)

	before := time.Now()
	msg, err := CreateContactMessage(db, ContactOpts{
		Name:    "Jean Dupont",
		Email:   "jean@x.com",
		Subject: "",
		Message: "Bonjour",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Read {
		t.Error("new message must start unread")
	}
	if msg.Subject != nil {
		t.Errorf("empty subject stored as %q, want NULL", *msg.Subject)
	}
	if msg.Date.Before(before.Add(-time.Second)) {
		t.Errorf("Date = %v, want defaulted to now", msg.Date)
	}

	msgs, err := ListContactMessages(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("len(msgs) = %d, want exactly 1 inserted row", len(msgs))
	}
}

func TestCreateContactMessage_WithSubject(t *testing.T) {
	db := testDB(t)
	msg, err := CreateContactMessage(db, ContactOpts{
		Name:    "Marie Leroy",
		Email:   "marie@x.com",
		Subject: "Devis",
		Message: "Pouvez-vous me rappeler ?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Subject == nil || *msg.Subject != "Devis" {
		t.Errorf("Subject = %v, want Devis", msg.Subject)
	}
}

func TestCreateContactMessage_Validation(t *testing.T) {
	db := testDB(t)
	tests := []struct {
		name string
		opts ContactOpts
	}{
		{"missing name", ContactOpts{Email: "a@b.c", Message: "m"}},
		{"missing email", ContactOpts{Name: "A", Message: "m"}},
		{"missing message", ContactOpts{Name: "A", Email: "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CreateContactMessage(db, tt.opts); !errors.Is(err, ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestMarkMessageRead(t *testing.T) {
	db := testDB(t)
	msg, err := CreateContactMessage(db, ContactOpts{Name: "A", Email: "a@b.c", Message: "m"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := MarkMessageRead(db, msg.ID, true); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	unread, err := CountUnreadMessages(db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread = %d, want 0", unread)
	}

	if _, err := MarkMessageRead(db, 999, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: error = %v, want ErrNotFound", err)
	}
}

func TestDeleteContactMessages_Bulk(t *testing.T) {
	db := testDB(t)
	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		msg, err := CreateContactMessage(db, ContactOpts{Name: name, Email: "a@b.c", Message: "m"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, msg.ID)
	}

	if err := DeleteContactMessages(db, ids[:2]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	msgs, err := ListContactMessages(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Name != "C" {
		t.Errorf("remaining = %d rows, want only C", len(msgs))
	}

	// Empty ID list is a no-op, not an error.
	if err := DeleteContactMessages(db, nil); err != nil {
		t.Errorf("nil ids: %v", err)
	}
}
