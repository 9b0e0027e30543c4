package errs

import (
	"strings"
	"testing"
)

func TestMsg(t *testing.T) {
	got := Msg(InvalidQueryPair, "oops")
	if !strings.Contains(got, `"oops"`) {
		t.Fatalf("expected quoted argument in message, got %q", got)
	}

	got = Msg(UnknownEndpoint, "users", "urlb.yml")
	if !strings.Contains(got, `"users"`) || !strings.Contains(got, "urlb.yml") {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestMsg_UnknownCode(t *testing.T) {
	if got := Msg(Code("NOPE")); got != "NOPE" {
		t.Fatalf("want code as fallback, got %q", got)
	}
}
