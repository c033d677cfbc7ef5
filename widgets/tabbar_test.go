package widgets_test

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"

	"github.com/deevus/texttable/widgets"
)

func TestTabBar_Labels(t *testing.T) {
	tb := widgets.NewTabBar([]string{"pools.csv", "users.json", "hosts.yaml"})
	if tb.Active() != 0 {
		t.Errorf("expected initial active=0, got %d", tb.Active())
	}
}

func TestTabBar_Next(t *testing.T) {
	tb := widgets.NewTabBar([]string{"A", "B", "C"})
	tb.Next()
	if tb.Active() != 1 {
		t.Errorf("expected active=1, got %d", tb.Active())
	}
	tb.Next()
	if tb.Active() != 2 {
		t.Errorf("expected active=2, got %d", tb.Active())
	}
	// Wraps around
	tb.Next()
	if tb.Active() != 0 {
		t.Errorf("expected active=0 after wrap, got %d", tb.Active())
	}
}

func TestTabBar_Prev(t *testing.T) {
	tb := widgets.NewTabBar([]string{"A", "B", "C"})
	// Wraps backward
	tb.Prev()
	if tb.Active() != 2 {
		t.Errorf("expected active=2 after backward wrap, got %d", tb.Active())
	}
	tb.Prev()
	if tb.Active() != 1 {
		t.Errorf("expected active=1, got %d", tb.Active())
	}
}

func TestTabBar_SetActive(t *testing.T) {
	tb := widgets.NewTabBar([]string{"A", "B", "C"})
	tb.SetActive(2)
	if tb.Active() != 2 {
		t.Errorf("expected active=2, got %d", tb.Active())
	}
	// Out of bounds is clamped
	tb.SetActive(5)
	if tb.Active() != 2 {
		t.Errorf("expected active=2 (clamped), got %d", tb.Active())
	}
	tb.SetActive(-1)
	if tb.Active() != 2 {
		t.Errorf("expected active=2 (clamped negative), got %d", tb.Active())
	}
}

func TestTabBar_Draw(t *testing.T) {
	tb := widgets.NewTabBar([]string{"pools.csv", "users.json", "hosts.yaml"})
	ctx := testDrawContext(80, 1)

	s, err := tb.Draw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Size.Height != 1 {
		t.Errorf("expected surface height=1, got %d", s.Size.Height)
	}
	if s.Size.Width != 80 {
		t.Errorf("expected surface width=80, got %d", s.Size.Width)
	}
}

func TestTabBar_Draw_ActiveTabChanges(t *testing.T) {
	tb := widgets.NewTabBar([]string{"A", "B", "C"})
	ctx := testDrawContext(40, 1)

	// Draw with tab 0 active
	s1, err := tb.Draw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1.Size.Height != 1 {
		t.Errorf("expected height=1, got %d", s1.Size.Height)
	}

	// Draw with tab 1 active
	tb.SetActive(1)
	s2, err := tb.Draw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s2.Size.Height != 1 {
		t.Errorf("expected height=1, got %d", s2.Size.Height)
	}

	// Draw with tab 2 active
	tb.SetActive(2)
	s3, err := tb.Draw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s3.Size.Height != 1 {
		t.Errorf("expected height=1, got %d", s3.Size.Height)
	}
}

func TestTabBar_Fit(t *testing.T) {
	tb := widgets.NewTabBar([]string{"alpha.csv", "beta.csv"})

	got := tb.Fit(80)
	if got[0] != "alpha.csv" || got[1] != "beta.csv" {
		t.Errorf("expected labels unchanged, got %v", got)
	}

	got = tb.Fit(20)
	if got[0] != "alph.." || got[1] != "beta.." {
		t.Errorf("expected fitted labels [alph.. beta..], got %v", got)
	}
}

func TestTabBar_Fit_TooNarrow(t *testing.T) {
	tb := widgets.NewTabBar([]string{"alpha.csv", "beta.csv", "gamma.csv"})

	got := tb.Fit(12)
	if got[0] != "alpha.csv" {
		t.Errorf("expected labels left alone, got %v", got)
	}
}

func TestTabBar_Draw_Fitted(t *testing.T) {
	tb := widgets.NewTabBar([]string{"alpha.csv", "beta.csv"})

	s, err := tb.Draw(testDrawContext(20, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := " alph..  |  beta.. "
	if got := rowText(s, 0)[:len(want)]; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if s.Buffer[1].Style.Attribute&vaxis.AttrReverse == 0 {
		t.Error("expected active tab in reverse video")
	}
}

func TestTabBar_Empty(t *testing.T) {
	tb := widgets.NewTabBar(nil)
	tb.Next()
	tb.Prev()
	if tb.Active() != 0 || tb.Len() != 0 {
		t.Errorf("expected empty bar to stay at 0, got active=%d len=%d", tb.Active(), tb.Len())
	}
}
