package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestValidAgent(t *testing.T) {
	for _, a := range Agents {
		if !ValidAgent(a) {
			t.Errorf("ValidAgent(%s) = false, want true", a)
		}
	}
	if ValidAgent("taobao") {
		t.Error("ValidAgent(taobao) = true, want false")
	}
	if ValidAgent("") {
		t.Error("ValidAgent(\"\") = true, want false")
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want StringList
	}{
		{"scalar", `"one.jpg"`, StringList{"one.jpg"}},
		{"empty scalar", `""`, nil},
		{"array", `["a.jpg","b.jpg"]`, StringList{"a.jpg", "b.jpg"}},
		{"null", `null`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProduct_JSONShape(t *testing.T) {
	p := Product{
		ID:           "cnfans-test-1",
		Name:         "Test",
		Agent:        AgentCnfans,
		Category:     CategoryShoes,
		Subcategory:  "Sneakers",
		Price:        10,
		Image:        "https://img.test/1.jpg",
		AffiliateURL: "https://cnfans.test/1",
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// Field names the frontend depends on.
	for _, key := range []string{"id", "name", "agent", "category", "subcategory", "price", "image", "affiliateUrl"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshaled product missing %q", key)
		}
	}
	if _, ok := m["clicks"]; ok {
		t.Error("zero clicks should be omitted")
	}
}
