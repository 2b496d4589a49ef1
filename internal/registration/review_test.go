package registration

import (
	"testing"

	"jaz-events-api/internal/formschema"

	"gorm.io/datatypes"
)

func TestReview_SchemaOrderAndLabels(t *testing.T) {
	schema := formschema.Schema{
		{ID: "f2", LabelAr: "المدينة", LabelEn: "City", Type: formschema.FieldText},
		{ID: "f1", LabelAr: "الاسم", Type: formschema.FieldText},
	}
	reg := &Registration{
		Answers: datatypes.JSON(`{"f1":"أحمد","f2":"الرياض"}`),
	}

	out, err := Review(reg, schema, "ar")
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	keys := out.Keys()
	if len(keys) != 2 || keys[0] != "المدينة" || keys[1] != "الاسم" {
		t.Fatalf("keys=%v want schema order", keys)
	}

	if v, _ := out.Get("الاسم"); v != "أحمد" {
		t.Fatalf("value=%v", v)
	}
}

func TestReview_LabelFallbackAndOrphans(t *testing.T) {
	schema := formschema.Schema{
		{ID: "f1", LabelEn: "Name", Type: formschema.FieldText},
	}
	reg := &Registration{
		Answers: datatypes.JSON(`{"f1":"Ahmed","removed_b":"2","removed_a":"1"}`),
	}

	out, err := Review(reg, schema, "ar")
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	keys := out.Keys()
	// ar label missing: falls back to en; orphans keep raw keys, sorted after
	want := []string{"Name", "removed_a", "removed_b"}
	if len(keys) != len(want) {
		t.Fatalf("keys=%v want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys=%v want %v", keys, want)
		}
	}
}

func TestReview_EmptySchemaShowsRawKeys(t *testing.T) {
	reg := &Registration{Answers: datatypes.JSON(`{"x":"1"}`)}

	out, err := Review(reg, formschema.Schema{}, "en")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if v, ok := out.Get("x"); !ok || v != "1" {
		t.Fatalf("out=%v", out.Keys())
	}
}

func TestReview_UnansweredFieldOmitted(t *testing.T) {
	schema := formschema.Schema{
		{ID: "f1", LabelAr: "الاسم", Type: formschema.FieldText},
		{ID: "f2", LabelAr: "المدينة", Type: formschema.FieldText},
	}
	reg := &Registration{Answers: datatypes.JSON(`{"f1":"أحمد"}`)}

	out, err := Review(reg, schema, "ar")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, ok := out.Get("المدينة"); ok {
		t.Fatal("field the user never saw should not appear in review")
	}
}
