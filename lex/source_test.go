package lex

import (
	"strings"
	"testing"
)

func TestSourcePositions(t *testing.T) {
	src := newSource(strings.NewReader("ab\nc"))
	for i, want := range []struct {
		char int
		pos  Pos
	}{
		{'a', Pos{1, 1}},
		{'b', Pos{1, 2}},
		{'\n', Pos{1, 3}},
		{'c', Pos{2, 1}},
		{eof, Pos{2, 2}},
		{eof, Pos{2, 2}},
	} {
		c, err := src.next()
		if err != nil {
			t.Fatal(err)
		}
		if c != want.char {
			t.Fatalf("step %d: got %q", i, c)
		}
		if src.pos() != want.pos {
			t.Fatalf("step %d: got %v", i, src.pos())
		}
	}
}

func TestSourcePushback(t *testing.T) {
	src := newSource(strings.NewReader("x\ny"))

	// nothing read yet
	src.pushback()
	c, err := src.next()
	if err != nil {
		t.Fatal(err)
	}
	if c != 'x' {
		t.Fatalf("got %q", c)
	}

	c, _ = src.next()
	if c != '\n' {
		t.Fatalf("got %q", c)
	}
	src.pushback()
	src.pushback()
	c, _ = src.next()
	if c != '\n' || src.pos() != (Pos{1, 2}) {
		t.Fatalf("got %q at %v", c, src.pos())
	}
	c, _ = src.next()
	if c != 'y' || src.pos() != (Pos{2, 1}) {
		t.Fatalf("got %q at %v", c, src.pos())
	}
}
