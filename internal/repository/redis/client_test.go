package redis

import (
	"context"
	"testing"
)

func TestKeyLayout(t *testing.T) {
	c := newClient(nil, "")
	if got := c.indexKey(); got != "statecraft:saves" {
		t.Fatalf("index key %q", got)
	}
	if got := c.slotKey("slot1"); got != "statecraft:save:slot1" {
		t.Fatalf("slot key %q", got)
	}

	other := newClient(nil, "test")
	if other.slotKey("slot1") == c.slotKey("slot1") {
		t.Fatal("namespaces share slot keys")
	}
}

func TestNewClientBadURL(t *testing.T) {
	if _, err := NewClient(context.Background(), "http://nope", ""); err == nil {
		t.Fatal("non-redis URL accepted")
	}
}
