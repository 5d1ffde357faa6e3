package models

import "testing"

func TestParseAnimalGroup(t *testing.T) {
	cases := []struct {
		in   string
		want AnimalGroup
		ok   bool
	}{
		{"dry_cows", GroupDryCows, true},
		{"Dry Cows", GroupDryCows, true},
		{"lactating-cows", GroupLactatingCows, true},
		{"  adult_bulls  ", GroupAdultBulls, true},
		{"Growing Calves", GroupGrowingCalves, true},
		{"goats", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseAnimalGroup(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseAnimalGroup(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAnimalGroupNames(t *testing.T) {
	if got := GroupCalves.DisplayName(); got != "Calves (0-3 mo)" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := GroupPregnantHeifers.ShortName(); got != "Pregnant Heifers" {
		t.Errorf("ShortName = %q", got)
	}
	if len(AllGroups) != 7 {
		t.Fatalf("len(AllGroups) = %d, want 7", len(AllGroups))
	}
	for _, group := range AllGroups {
		if !group.Valid() {
			t.Errorf("group %q not valid", group)
		}
	}
}

func TestFeedSelectionNonZero(t *testing.T) {
	selection := FeedSelection{"Berseem": 10, "Wheat Straw": 0, "Maize Silage": -1}

	active := selection.NonZero()

	if len(active) != 1 {
		t.Fatalf("len(active) = %d, want 1", len(active))
	}
	if active["Berseem"] != 10 {
		t.Errorf("active[Berseem] = %v", active["Berseem"])
	}
}
