package workflow

import (
	"testing"
	"time"

	"backoffice/models"
)

func TestCombineByPeriodMergesAcrossDays(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-05 00:00:00")

	r1 := rec("C001", "U1", "Valid Bet", "100", models.StatusPending, ts(t, "2025-01-01 09:00:00"))
	r2 := rec("C002", "U1", "Valid Bet", "150", models.StatusPending, ts(t, "2025-01-03 14:30:00"))

	out := CombineByPeriod([]models.TransactionRecord{r1, r2}, &from, &to)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1 combined row", len(out))
	}

	c := out[0]
	if !c.Amount.Equal(d("250")) {
		t.Errorf("combined amount = %s, want 250", c.Amount)
	}
	if c.CombinedCount != 2 {
		t.Errorf("combined count = %d, want 2", c.CombinedCount)
	}
	if c.RecordID != "C001_combined_2" {
		t.Errorf("combined id = %q, want C001_combined_2", c.RecordID)
	}
	wantDisplay := "2025-01-01 09:00:00 - 2025-01-03 14:30:00"
	if c.SubmitTimeDisplay != wantDisplay {
		t.Errorf("submit display = %q, want %q", c.SubmitTimeDisplay, wantDisplay)
	}
	if len(c.OriginalIDs) != 2 || c.OriginalIDs[0] != "C001" || c.OriginalIDs[1] != "C002" {
		t.Errorf("original ids = %v, want [C001 C002]", c.OriginalIDs)
	}
}

func TestCombineByPeriodSumsSubAmounts(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-02 00:00:00")

	r1 := rec("C001", "U1", "Deposit - Withdraw", "10", models.StatusPending, ts(t, "2025-01-01 09:00:00"))
	r1.DepositAmount = d("1000")
	r1.WithdrawAmount = d("400")
	r1.ValidBetAmount = d("5000")
	r1.CommissionAmount = d("10")

	r2 := rec("C002", "U1", "Deposit - Withdraw", "20", models.StatusPending, ts(t, "2025-01-02 09:00:00"))
	r2.DepositAmount = d("500")
	r2.WithdrawAmount = d("100")
	r2.ValidBetAmount = d("2500")
	r2.CommissionAmount = d("20")

	out := CombineByPeriod([]models.TransactionRecord{r1, r2}, &from, &to)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}

	c := out[0]
	checks := []struct {
		name string
		got  string
		want string
	}{
		{"amount", c.Amount.String(), "30"},
		{"deposit", c.DepositAmount.String(), "1500"},
		{"withdraw", c.WithdrawAmount.String(), "500"},
		{"valid bet", c.ValidBetAmount.String(), "7500"},
		{"commission", c.CommissionAmount.String(), "30"},
	}
	for _, chk := range checks {
		if chk.got != chk.want {
			t.Errorf("%s sum = %s, want %s", chk.name, chk.got, chk.want)
		}
	}
}

func TestCombineByPeriodWithoutBothBoundsPassesThrough(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")

	r1 := rec("C001", "U1", "Valid Bet", "100", models.StatusPending, ts(t, "2025-01-01 09:00:00"))
	r2 := rec("C002", "U1", "Valid Bet", "150", models.StatusPending, ts(t, "2025-01-03 14:30:00"))
	records := []models.TransactionRecord{r1, r2}

	for _, tc := range []struct {
		name     string
		from, to *time.Time
	}{
		{"no bounds", nil, nil},
		{"only from", &from, nil},
		{"only to", nil, &from},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := CombineByPeriod(records, tc.from, tc.to)
			if len(out) != 2 {
				t.Fatalf("got %d rows, want 2 untouched rows", len(out))
			}
			for i, c := range out {
				if c.CombinedCount != 1 {
					t.Errorf("row %d combined count = %d, want 1", i, c.CombinedCount)
				}
				if c.RecordID != records[i].RecordID {
					t.Errorf("row %d id = %q, want %q", i, c.RecordID, records[i].RecordID)
				}
			}
		})
	}
}

func TestCombineByPeriodSingletonsPassThroughUniformly(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-05 00:00:00")

	r1 := rec("C001", "U1", "Valid Bet", "100", models.StatusPending, ts(t, "2025-01-01 09:00:00"))
	r2 := rec("C002", "U2", "Valid Bet", "150", models.StatusPending, ts(t, "2025-01-03 14:30:00"))

	out := CombineByPeriod([]models.TransactionRecord{r1, r2}, &from, &to)
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2 singleton rows", len(out))
	}
	for i, want := range []models.TransactionRecord{r1, r2} {
		c := out[i]
		if c.CombinedCount != 1 {
			t.Errorf("row %d combined count = %d, want 1", i, c.CombinedCount)
		}
		if c.RecordID != want.RecordID || !c.Amount.Equal(want.Amount) || c.Remark != want.Remark {
			t.Errorf("row %d differs from input: %+v", i, c.TransactionRecord)
		}
		if len(c.OriginalIDs) != 1 || c.OriginalIDs[0] != want.RecordID {
			t.Errorf("row %d original ids = %v, want [%s]", i, c.OriginalIDs, want.RecordID)
		}
	}
}

func TestCombineByPeriodEarliestTieBreakIsStable(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-05 00:00:00")
	same := ts(t, "2025-01-02 12:00:00")

	r1 := rec("C007", "U1", "Valid Bet", "10", models.StatusPending, same)
	r2 := rec("C003", "U1", "Valid Bet", "20", models.StatusPending, same)

	out := CombineByPeriod([]models.TransactionRecord{r1, r2}, &from, &to)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	if out[0].RecordID != "C007_combined_2" {
		t.Fatalf("combined id = %q, want first occurrence C007 to win the tie", out[0].RecordID)
	}
}

func TestCombineByPeriodLeavesNonPendingAndOutOfWindowAlone(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-05 00:00:00")

	inWindow := rec("C001", "U1", "Valid Bet", "100", models.StatusPending, ts(t, "2025-01-02 09:00:00"))
	completed := rec("C002", "U1", "Valid Bet", "150", models.StatusCompleted, ts(t, "2025-01-02 10:00:00"))
	outside := rec("C003", "U1", "Valid Bet", "70", models.StatusPending, ts(t, "2025-01-09 10:00:00"))

	out := CombineByPeriod([]models.TransactionRecord{inWindow, completed, outside}, &from, &to)
	if len(out) != 3 {
		t.Fatalf("got %d rows, want 3 (nothing mergeable together)", len(out))
	}
	for _, c := range out {
		if c.CombinedCount != 1 {
			t.Errorf("row %s combined count = %d, want 1", c.RecordID, c.CombinedCount)
		}
	}
}

func TestCombineByPeriodSameDayUsesOriginalTimestamp(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-05 00:00:00")

	r1 := rec("C001", "U1", "Valid Bet", "100", models.StatusPending, ts(t, "2025-01-02 09:00:00"))
	r2 := rec("C002", "U1", "Valid Bet", "150", models.StatusPending, ts(t, "2025-01-02 18:00:00"))

	out := CombineByPeriod([]models.TransactionRecord{r1, r2}, &from, &to)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	if out[0].SubmitTimeDisplay != "2025-01-02 09:00:00" {
		t.Fatalf("submit display = %q, want single earliest timestamp", out[0].SubmitTimeDisplay)
	}
}

func TestCombineClearsRemark(t *testing.T) {
	from := ts(t, "2025-01-01 00:00:00")
	to := ts(t, "2025-01-05 00:00:00")

	r1 := rec("C001", "U1", "Valid Bet", "100", models.StatusPending, ts(t, "2025-01-01 09:00:00"))
	r1.Remark = "first remark"
	r2 := rec("C002", "U1", "Valid Bet", "150", models.StatusPending, ts(t, "2025-01-03 09:00:00"))
	r2.Remark = "second remark"

	out := CombineByPeriod([]models.TransactionRecord{r1, r2}, &from, &to)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	if out[0].Remark != "" {
		t.Fatalf("combined remark = %q, want empty", out[0].Remark)
	}
}
