package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", ":50051", "-x", "nope", "-d", "dsn"}
	got := FilterArgs(args, []string{"-a", "-d"})
	want := []string{"-a", ":50051", "-d", "dsn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=1"}
	got := FilterArgs(args, []string{"--config"})
	want := []string{"--config=conf.json"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// boolean-style allowed flag followed by another flag must not
	// swallow the next flag as a value
	args := []string{"-v", "-a", "addr"}
	got := FilterArgs(args, []string{"-v", "-a"})
	want := []string{"-v", "-a", "addr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
