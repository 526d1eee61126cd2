package entity

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from ContractStatus
		to   ContractStatus
		want bool
	}{
		{ContractStatusDraft, ContractStatusGenerated, true},
		{ContractStatusDraft, ContractStatusCancelled, true},
		{ContractStatusDraft, ContractStatusSigning, false},
		{ContractStatusDraft, ContractStatusSigned, false},
		{ContractStatusDraft, ContractStatusDraft, false},

		{ContractStatusGenerated, ContractStatusSigning, true},
		{ContractStatusGenerated, ContractStatusGenerated, true},
		{ContractStatusGenerated, ContractStatusCancelled, true},
		{ContractStatusGenerated, ContractStatusSigned, false},
		{ContractStatusGenerated, ContractStatusDraft, false},

		{ContractStatusSigning, ContractStatusSigned, true},
		{ContractStatusSigning, ContractStatusCancelled, true},
		{ContractStatusSigning, ContractStatusGenerated, false},
		{ContractStatusSigning, ContractStatusDraft, false},

		{ContractStatusSigned, ContractStatusCancelled, false},
		{ContractStatusSigned, ContractStatusSigning, false},
		{ContractStatusSigned, ContractStatusDraft, false},
		{ContractStatusCancelled, ContractStatusDraft, false},
		{ContractStatusCancelled, ContractStatusSigned, false},

		{ContractStatus("BOGUS"), ContractStatusDraft, false},
		{ContractStatusDraft, ContractStatus("BOGUS"), false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []ContractStatus{ContractStatusSigned, ContractStatusCancelled} {
		if !IsTerminal(status) {
			t.Errorf("IsTerminal(%s) = false, want true", status)
		}
	}
	for _, status := range []ContractStatus{ContractStatusDraft, ContractStatusGenerated, ContractStatusSigning} {
		if IsTerminal(status) {
			t.Errorf("IsTerminal(%s) = true, want false", status)
		}
	}
}

func TestValidTransitionsReturnsCopy(t *testing.T) {
	first := ValidTransitions(ContractStatusDraft)
	if len(first) != 2 {
		t.Fatalf("ValidTransitions(DRAFT) has %d targets, want 2", len(first))
	}
	first[0] = ContractStatusSigned

	second := ValidTransitions(ContractStatusDraft)
	if second[0] == ContractStatusSigned {
		t.Error("mutating the returned slice leaked into the transition table")
	}
}

func TestValidTransitionsTerminalEmpty(t *testing.T) {
	if got := ValidTransitions(ContractStatusSigned); len(got) != 0 {
		t.Errorf("ValidTransitions(SIGNED) = %v, want empty", got)
	}
	if got := ValidTransitions(ContractStatusCancelled); len(got) != 0 {
		t.Errorf("ValidTransitions(CANCELLED) = %v, want empty", got)
	}
}

func TestIsValidContractStatus(t *testing.T) {
	for _, s := range []string{"DRAFT", "GENERATED", "SIGNING", "SIGNED", "CANCELLED"} {
		if !IsValidContractStatus(s) {
			t.Errorf("IsValidContractStatus(%s) = false, want true", s)
		}
	}
	for _, s := range []string{"", "draft", "PENDING", "DONE"} {
		if IsValidContractStatus(s) {
			t.Errorf("IsValidContractStatus(%q) = true, want false", s)
		}
	}
}

// TestLifecycleChain walks a full contract from draft to signed, checking the
// table agrees at each step.
func TestLifecycleChain(t *testing.T) {
	chain := []ContractStatus{
		ContractStatusDraft,
		ContractStatusGenerated,
		ContractStatusGenerated, // re-generation
		ContractStatusSigning,
		ContractStatusSigned,
	}

	current := chain[0]
	for _, next := range chain[1:] {
		if !CanTransition(current, next) {
			t.Fatalf("expected %s -> %s to be legal", current, next)
		}
		current = next
	}

	if !IsTerminal(current) {
		t.Errorf("chain ended on %s which should be terminal", current)
	}
}
