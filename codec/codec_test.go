package codec_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	glyphscast "github.com/reoring/glyphscast"
	"github.com/reoring/glyphscast/codec"
)

func mustIssue(t *testing.T, err error, code, path string) {
	t.Helper()
	iss, ok := glyphscast.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected a single issue, got %v", err)
	}
	if iss[0].Code != code || iss[0].Path != path {
		t.Fatalf("expected %s at %s, got %s at %s", code, path, iss[0].Code, iss[0].Path)
	}
}

func TestScalarConverters(t *testing.T) {
	cases := []struct {
		name string
		conv glyphscast.Converter
		in   any
		want any
	}{
		{"identity keeps value", codec.Identity, []any{"a"}, []any{"a"}},
		{"string", codec.String, "Regular", "Regular"},
		{"truthy one", codec.Truthy, "1", true},
		{"truthy zero", codec.Truthy, "0", false},
		{"truthy other", codec.Truthy, "2", true},
		{"int", codec.Int, "700", 700},
		{"int negative", codec.Int, "-12", -12},
		{"num integral", codec.Num, "12", 12},
		{"num integral float text", codec.Num, "12.0", 12},
		{"num exponent", codec.Num, "1e3", 1000},
		{"num fraction", codec.Num, "2.5", 2.5},
		{"hex", codec.HexInt, "0041", 0x41},
		{"hex prefix", codec.HexInt, "0x1F600", 0x1F600},
		{"hex lower", codec.HexInt, "fb01", 0xFB01},
		{"hex signed", codec.HexInt, "-0x1f", -0x1F},
		{"hex plus", codec.HexInt, "+a", 0xA},
		{"list", codec.List, []any{"AV", "To"}, []any{"AV", "To"}},
		{"dict", codec.Dict, map[string]any{"k": "v"}, map[string]any{"k": "v"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.conv(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScalarConverters_Malformed(t *testing.T) {
	cases := []struct {
		name string
		conv glyphscast.Converter
		in   any
		code string
	}{
		{"truthy text", codec.Truthy, "yes", glyphscast.CodeInvalidFormat},
		{"int float text", codec.Int, "1.5", glyphscast.CodeInvalidFormat},
		{"int not string", codec.Int, []any{"1"}, glyphscast.CodeInvalidType},
		{"num text", codec.Num, "abc", glyphscast.CodeInvalidFormat},
		{"num nan", codec.Num, "nan", glyphscast.CodeInvalidFormat},
		{"num inf", codec.Num, "inf", glyphscast.CodeInvalidFormat},
		{"hex digits", codec.HexInt, "00G1", glyphscast.CodeInvalidFormat},
		{"hex double sign", codec.HexInt, "--5", glyphscast.CodeInvalidFormat},
		{"hex sign after prefix", codec.HexInt, "-0x-5", glyphscast.CodeInvalidFormat},
		{"hex plus after minus", codec.HexInt, "-+5", glyphscast.CodeInvalidFormat},
		{"list of string", codec.List, "abc", glyphscast.CodeInvalidType},
		{"dict of list", codec.Dict, []any{}, glyphscast.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.conv(tc.in)
			mustIssue(t, err, tc.code, "/")
		})
	}
}

func TestString_NonString(t *testing.T) {
	got, err := codec.String(42)
	if err != nil || got != "42" {
		t.Fatalf("got %v err=%v", got, err)
	}
}

func TestList_Copies(t *testing.T) {
	in := []any{"a"}
	out, _ := codec.List(in)
	out.([]any)[0] = "b"
	if in[0] != "a" {
		t.Fatalf("list converter must not alias its input")
	}
}

func TestParseVector(t *testing.T) {
	got, err := codec.ParseVector("{1, 2.5}", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(codec.Vector{1, 2.5}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if got.Float(0) != 1 || got.Float(1) != 2.5 {
		t.Fatalf("Float accessors: %v %v", got.Float(0), got.Float(1))
	}

	for _, bad := range []string{"{1,2,3}", "{1, 2, 3}", "{1,2}", "1, 2", "{1}", "{a, b}", "{1e, 2}"} {
		if _, err := codec.ParseVector(bad, 2); err == nil {
			t.Fatalf("expected %q to fail", bad)
		} else {
			mustIssue(t, err, glyphscast.CodeInvalidFormat, "/")
		}
	}
}

func TestPointAndTransform(t *testing.T) {
	p, err := codec.Point("{-10, 300.5}")
	if err != nil {
		t.Fatalf("point: %v", err)
	}
	if diff := cmp.Diff(codec.Vector{-10, 300.5}, p); diff != "" {
		t.Fatalf("point mismatch (-want +got):\n%s", diff)
	}
	tr, err := codec.Transform("{1, 0, 0, 1, 25, -3.5}")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if diff := cmp.Diff(codec.Vector{1, 0, 0, 1, 25, -3.5}, tr); diff != "" {
		t.Fatalf("transform mismatch (-want +got):\n%s", diff)
	}
	if _, err := codec.Transform("{1, 0}"); err == nil {
		t.Fatalf("expected transform arity failure")
	}
	if _, err := codec.Point(12); err == nil {
		t.Fatalf("expected point type failure")
	}
}

func TestParseNode(t *testing.T) {
	cases := []struct {
		in   string
		want codec.PathNode
	}{
		{"100 200 LINE", codec.PathNode{X: 100, Y: 200, Type: codec.NodeLine}},
		{"10.5 20 CURVE SMOOTH", codec.PathNode{X: 10.5, Y: 20, Type: codec.NodeCurve, Smooth: true}},
		{"-5 0 OFFCURVE", codec.PathNode{X: -5, Y: 0, Type: codec.NodeOffCurve}},
	}
	for _, tc := range cases {
		got, err := codec.ParseNode(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%q mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
	for _, bad := range []string{"100 200", "100 200 QCURVE", "x y LINE", "100,200 LINE", "1e 2 LINE"} {
		_, err := codec.ParseNode(bad)
		mustIssue(t, err, glyphscast.CodeInvalidFormat, "/")
	}
}

func TestLists(t *testing.T) {
	ints, err := codec.IntList([]any{"80", "92"})
	if err != nil {
		t.Fatalf("intlist: %v", err)
	}
	if diff := cmp.Diff([]int{80, 92}, ints); diff != "" {
		t.Fatalf("intlist mismatch (-want +got):\n%s", diff)
	}

	pts, err := codec.PointList([]any{"{800, 16}", "{0, -16}"})
	if err != nil {
		t.Fatalf("pointlist: %v", err)
	}
	if diff := cmp.Diff([]codec.Vector{{800, 16}, {0, -16}}, pts); diff != "" {
		t.Fatalf("pointlist mismatch (-want +got):\n%s", diff)
	}

	nodes, err := codec.NodeList([]any{"0 0 LINE", "10 20 OFFCURVE", "30 40 CURVE SMOOTH"})
	if err != nil {
		t.Fatalf("nodelist: %v", err)
	}
	want := []codec.PathNode{
		{X: 0, Y: 0, Type: codec.NodeLine},
		{X: 10, Y: 20, Type: codec.NodeOffCurve},
		{X: 30, Y: 40, Type: codec.NodeCurve, Smooth: true},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Fatalf("nodelist mismatch (-want +got):\n%s", diff)
	}

	empty, err := codec.IntList([]any{})
	if err != nil || len(empty.([]int)) != 0 {
		t.Fatalf("empty list: %v %v", empty, err)
	}
}

func TestLists_ElementFailureAbortsWithIndex(t *testing.T) {
	_, err := codec.IntList([]any{"1", "2", "x"})
	mustIssue(t, err, glyphscast.CodeInvalidFormat, "/2")

	_, err = codec.NodeList([]any{"0 0 LINE", 7})
	mustIssue(t, err, glyphscast.CodeInvalidType, "/1")

	_, err = codec.PointList("{1, 2}")
	mustIssue(t, err, glyphscast.CodeInvalidType, "/")
}

func TestParseDatetime(t *testing.T) {
	got, err := codec.ParseDatetime("2015-06-08 08:30:00 +0000")
	if err != nil {
		t.Fatalf("datetime: %v", err)
	}
	want := time.Date(2015, time.June, 8, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	// The zone token is discarded, not applied.
	got, err = codec.ParseDatetime("2015-06-08 08:30:00 +0900")
	if err != nil || !got.Equal(want) {
		t.Fatalf("zone should be ignored: %v %v", got, err)
	}
	for _, bad := range []string{"2015-06-08", "2015-06-08 08:30:00", "08/06/2015 08:30:00 +0000"} {
		_, err := codec.ParseDatetime(bad)
		mustIssue(t, err, glyphscast.CodeInvalidFormat, "/")
	}
}

func TestKerning(t *testing.T) {
	got, err := codec.Kerning(map[string]any{
		"m1": map[string]any{"A": map[string]any{"B": "10", "V": "-40"}},
		"m2": map[string]any{},
	})
	if err != nil {
		t.Fatalf("kerning: %v", err)
	}
	want := codec.KerningGrid{
		"m1": {"A": {"B": 10, "V": -40}},
		"m2": {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kerning mismatch (-want +got):\n%s", diff)
	}
}

func TestKerning_Malformed(t *testing.T) {
	_, err := codec.Kerning(map[string]any{"m1": map[string]any{"A": map[string]any{"B": "ten"}}})
	mustIssue(t, err, glyphscast.CodeInvalidFormat, "/m1/A/B")

	_, err = codec.Kerning(map[string]any{"m1": map[string]any{"A": "10"}})
	mustIssue(t, err, glyphscast.CodeInvalidType, "/m1/A")

	_, err = codec.Kerning(map[string]any{"m1": "x"})
	mustIssue(t, err, glyphscast.CodeInvalidType, "/m1")

	_, err = codec.Kerning([]any{})
	mustIssue(t, err, glyphscast.CodeInvalidType, "/")

	// Group names carry '@' and may contain '/'; pointers escape them.
	_, err = codec.Kerning(map[string]any{"m1": map[string]any{"@MMK_L_a/b": map[string]any{"B": "x"}}})
	mustIssue(t, err, glyphscast.CodeInvalidFormat, "/m1/@MMK_L_a~1b/B")
}

func TestRangeChecks(t *testing.T) {
	if v, err := codec.Descender("-10"); err != nil || v != -10 {
		t.Fatalf("descender: %v %v", v, err)
	}
	_, err := codec.Descender("10")
	mustIssue(t, err, glyphscast.CodeDomainRange, "/")
	_, err = codec.Descender("0")
	mustIssue(t, err, glyphscast.CodeDomainRange, "/")
	_, err = codec.Descender("low")
	mustIssue(t, err, glyphscast.CodeInvalidFormat, "/")

	for _, ok := range []string{"0", "500", "999"} {
		if _, err := codec.VersionMinor(ok); err != nil {
			t.Fatalf("version minor %s: %v", ok, err)
		}
	}
	if v, _ := codec.VersionMinor("500"); v != 500 {
		t.Fatalf("version minor value: %v", v)
	}
	for _, bad := range []string{"1000", "-1"} {
		_, err := codec.VersionMinor(bad)
		mustIssue(t, err, glyphscast.CodeDomainRange, "/")
	}
	iss, _ := glyphscast.AsIssues(func() error { _, err := codec.VersionMinor("1000"); return err }())
	if iss[0].Params["got"] != 1000 || iss[0].Params["max"] != 999 {
		t.Fatalf("expected range params, got %v", iss[0].Params)
	}
}

func TestFeatureSyntax(t *testing.T) {
	got, err := codec.FeatureSyntax(`\U2018hello\U2019`)
	if err != nil || got != "'hello'" {
		t.Fatalf("got %q err=%v", got, err)
	}
	in := `sub a by b;\012pos \U201Cx\U201D;\011# \U2022 stays`
	want := "sub a by b;\npos \"x\";\t# \\U2022 stays"
	if got := codec.UnescapeFeatureSyntax(in); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	got, err = codec.FeatureSyntax("pos ‘x’ “y”;")
	if err != nil || got != `pos 'x' "y";` {
		t.Fatalf("decoded quotes: got %q err=%v", got, err)
	}
	_, err = codec.FeatureSyntax(nil)
	mustIssue(t, err, glyphscast.CodeInvalidType, "/")
}
