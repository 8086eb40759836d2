package services

import "testing"

func validSalary() SalaryInput {
	return SalaryInput{
		Username:    "alice",
		Month:       "2025-07",
		TotalSalary: 500,
	}
}

func TestBuildSalaryDefaults(t *testing.T) {
	record, err := BuildSalary(validSalary())
	if err != nil {
		t.Fatal(err)
	}
	if !record.RemainingSalary.Equal(dec(500)) {
		t.Errorf("remaining = %s, want full salary", record.RemainingSalary)
	}
	if record.DaysAbsent != 0 {
		t.Errorf("days absent = %d, want 0", record.DaysAbsent)
	}
	if !record.PaidSalary().IsZero() {
		t.Errorf("paid = %s, want 0 for a fresh period", record.PaidSalary())
	}
}

func TestBuildSalaryNegativeRemainingClamps(t *testing.T) {
	in := validSalary()
	in.RemainingSalary = f64(-50)
	record, err := BuildSalary(in)
	if err != nil {
		t.Fatal(err)
	}
	if !record.RemainingSalary.IsZero() {
		t.Errorf("remaining = %s, want 0", record.RemainingSalary)
	}
	if !record.PaidSalary().Equal(dec(500)) {
		t.Errorf("paid = %s, want 500", record.PaidSalary())
	}
}

func TestBuildSalaryPartialPayment(t *testing.T) {
	in := validSalary()
	in.RemainingSalary = f64(200)
	record, err := BuildSalary(in)
	if err != nil {
		t.Fatal(err)
	}
	if !record.PaidSalary().Equal(dec(300)) {
		t.Errorf("paid = %s, want 300", record.PaidSalary())
	}
}

func TestSalaryConflictTargetsPeriodIndex(t *testing.T) {
	oc := salaryConflict()

	if len(oc.Columns) != 2 || oc.Columns[0].Name != "username" || oc.Columns[1].Name != "month" {
		t.Errorf("conflict columns = %v, want (username, month)", oc.Columns)
	}

	want := map[string]bool{
		"total_salary":     true,
		"days_absent":      true,
		"remaining_salary": true,
		"due_date":         true,
		"note":             true,
		"updated_at":       true,
	}
	if len(oc.DoUpdates) != len(want) {
		t.Fatalf("update columns = %d, want %d", len(oc.DoUpdates), len(want))
	}
	for _, assignment := range oc.DoUpdates {
		if !want[assignment.Column.Name] {
			t.Errorf("unexpected update column %q", assignment.Column.Name)
		}
	}
}

func TestBuildSalaryValidation(t *testing.T) {
	cases := map[string]func(*SalaryInput){
		"no username":    func(in *SalaryInput) { in.Username = " " },
		"bad month":      func(in *SalaryInput) { in.Month = "July 2025" },
		"negative total": func(in *SalaryInput) { in.TotalSalary = -1 },
		"negative days":  func(in *SalaryInput) { d := -2; in.DaysAbsent = &d },
		"bad due date":   func(in *SalaryInput) { in.DueDate = "next friday" },
	}
	for name, mutate := range cases {
		in := validSalary()
		mutate(&in)
		_, err := BuildSalary(in)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}
