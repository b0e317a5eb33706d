package stream

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	sanzang "github.com/yaoguai/sanzang-lib"
)

func testTable(t *testing.T, src string) *sanzang.Table {
	t.Helper()
	tab, err := sanzang.ReadTable(strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot load test table: %v", err)
	}
	return tab
}

func TestReflowBatchIdentity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	input := strings.Repeat("你好。世界？而時\n佛告須菩提！諸菩薩摩訶薩，應如是降伏其心。\n", 40)
	want := sanzang.Reflow(input)
	for _, batch := range []int{1, 7, 1000} {
		var out strings.Builder
		if err := ReflowBatch(&out, strings.NewReader(input), batch); err != nil {
			t.Fatalf("reflow driver failed with batch %d: %v", batch, err)
		}
		if out.String() != want {
			t.Errorf("reflow driver output for batch %d differs from unbuffered reflow", batch)
		}
	}
}

func TestReflowBatchNoSafeCut(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// No ender anywhere: the buffer can never be cut early and everything
	// must come out in the final flush.
	input := "甲乙丙\n丁戊己\n"
	var out strings.Builder
	if err := ReflowBatch(&out, strings.NewReader(input), 1); err != nil {
		t.Fatalf("reflow driver failed: %v", err)
	}
	if out.String() != sanzang.Reflow(input) {
		t.Errorf("expected %q, have %q", sanzang.Reflow(input), out.String())
	}
}

func TestSubstituteBatchIdentity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab := testTable(t, "菩薩|bodhisattva\n降伏|to subdue")
	input := strings.Repeat("諸菩薩摩訶薩應如是降伏其心\n菩薩於法應無所住\n", 40)
	want := sanzang.Substitute(tab, input)
	for _, batch := range []int{1, 3, 1000} {
		var out strings.Builder
		if err := SubstituteBatch(tab, &out, strings.NewReader(input), batch); err != nil {
			t.Fatalf("substitute driver failed with batch %d: %v", batch, err)
		}
		if out.String() != want {
			t.Errorf("substitute driver output for batch %d differs from unbuffered run", batch)
		}
	}
}

func TestTranslateBatchNumbering(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab := testTable(t, "甲|one\n乙|two")
	input := "甲\n乙\n甲乙\n丙\n乙甲\n"
	want := sanzang.FormatListing(tab, input, 1)
	for _, batch := range []int{1, 2, 1000} {
		var out strings.Builder
		if err := TranslateBatch(tab, &out, strings.NewReader(input), batch); err != nil {
			t.Fatalf("translate driver failed with batch %d: %v", batch, err)
		}
		if out.String() != want {
			t.Errorf("translate driver output for batch %d differs from unbuffered run:\nwant %q\nhave %q",
				batch, want, out.String())
		}
	}
}

func TestTranslateBatchExactMultiple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// Input length is an exact multiple of the batch size; the final flush
	// must not emit a spurious empty group.
	tab := testTable(t, "甲|one\n乙|two")
	input := "甲\n乙\n甲\n乙\n"
	var out strings.Builder
	if err := TranslateBatch(tab, &out, strings.NewReader(input), 2); err != nil {
		t.Fatalf("translate driver failed: %v", err)
	}
	if out.String() != sanzang.FormatListing(tab, input, 1) {
		t.Errorf("unexpected output at exact batch multiple:\n%q", out.String())
	}
}

func TestTranslateBatchNoFinalNewline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// The last input line has no terminating line break; final numbering
	// must still match an unbuffered run.
	tab := testTable(t, "甲|one\n乙|two")
	input := "甲\n乙\n甲乙"
	want := sanzang.FormatListing(tab, input, 1)
	var out strings.Builder
	if err := TranslateBatch(tab, &out, strings.NewReader(input), 2); err != nil {
		t.Fatalf("translate driver failed: %v", err)
	}
	if out.String() != want {
		t.Errorf("numbering drifted on unterminated input:\nwant %q\nhave %q", want, out.String())
	}
}

func TestDriversEmptyInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tab := testTable(t, "甲|one")
	var out strings.Builder
	if err := Reflow(&out, strings.NewReader("")); err != nil || out.Len() != 0 {
		t.Errorf("reflow driver on empty input: %q, %v", out.String(), err)
	}
	out.Reset()
	if err := Substitute(tab, &out, strings.NewReader("")); err != nil || out.Len() != 0 {
		t.Errorf("substitute driver on empty input: %q, %v", out.String(), err)
	}
	out.Reset()
	if err := Translate(tab, &out, strings.NewReader("")); err != nil || out.Len() != 0 {
		t.Errorf("translate driver on empty input: %q, %v", out.String(), err)
	}
}
