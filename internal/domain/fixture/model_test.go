package fixture

import "testing"

func TestFixture_SideUsesPerSideDifficulty(t *testing.T) {
	f := Fixture{ID: 1, Gameweek: 3, HomeTeamID: 10, AwayTeamID: 20, HomeDifficulty: 2, AwayDifficulty: 4}

	opp, diff, home := f.Side(10)
	if opp != 20 || diff != 2 || !home {
		t.Fatalf("home side: got opp=%d diff=%d home=%v", opp, diff, home)
	}

	opp, diff, home = f.Side(20)
	if opp != 10 || diff != 4 || home {
		t.Fatalf("away side: got opp=%d diff=%d home=%v", opp, diff, home)
	}
}

func TestFixture_Validate(t *testing.T) {
	if err := (Fixture{ID: 1, HomeTeamID: 1, AwayTeamID: 1}).Validate(); err == nil {
		t.Fatalf("expected error when a team plays itself")
	}
	if err := (Fixture{ID: 1, HomeTeamID: 1, AwayTeamID: 2}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClampDifficulty(t *testing.T) {
	if got := ClampDifficulty(0); got != MinDifficulty {
		t.Fatalf("expected clamp to %d, got %d", MinDifficulty, got)
	}
	if got := ClampDifficulty(9); got != MaxDifficulty {
		t.Fatalf("expected clamp to %d, got %d", MaxDifficulty, got)
	}
	if got := ClampDifficulty(3); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
