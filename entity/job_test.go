package entity

import "testing"

func TestCanAdvanceJob(t *testing.T) {
	cases := []struct {
		from JobStatus
		to   JobStatus
		want bool
	}{
		{JobStatusPending, JobStatusRunning, true},
		{JobStatusPending, JobStatusSucceeded, true},
		{JobStatusPending, JobStatusFailed, true},
		{JobStatusRunning, JobStatusSucceeded, true},
		{JobStatusRunning, JobStatusFailed, true},

		{JobStatusRunning, JobStatusPending, false},
		{JobStatusSucceeded, JobStatusFailed, false},
		{JobStatusSucceeded, JobStatusRunning, false},
		{JobStatusFailed, JobStatusSucceeded, false},
		{JobStatusFailed, JobStatusPending, false},
		{JobStatusPending, JobStatusPending, false},
		{JobStatusRunning, JobStatusRunning, false},

		{JobStatus("UNKNOWN"), JobStatusRunning, false},
		{JobStatusPending, JobStatus("UNKNOWN"), false},
	}

	for _, tc := range cases {
		if got := CanAdvanceJob(tc.from, tc.to); got != tc.want {
			t.Errorf("CanAdvanceJob(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestJobStatusTerminal(t *testing.T) {
	if !JobStatusSucceeded.Terminal() || !JobStatusFailed.Terminal() {
		t.Error("SUCCEEDED and FAILED must be terminal")
	}
	if JobStatusPending.Terminal() || JobStatusRunning.Terminal() {
		t.Error("PENDING and RUNNING must not be terminal")
	}
}

func TestIsValidJobKind(t *testing.T) {
	if !IsValidJobKind("AI_GENERATION") || !IsValidJobKind("PDF_GENERATION") {
		t.Error("known kinds rejected")
	}
	if IsValidJobKind("") || IsValidJobKind("EMAIL") {
		t.Error("unknown kinds accepted")
	}
}
