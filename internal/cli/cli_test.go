package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"npv-engine/internal/irr"
	"npv-engine/internal/model"
	"npv-engine/internal/validate"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNpvCommand(t *testing.T) {
	out, err := run(t, "npv", "--rate", "0.10", "--", "-1000", "300", "300", "300", "300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Net Present Value", "Required rate (r): 10.00%", "NPV = **-49.04**", "**Decision:** REJECT"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestIrrCommand(t *testing.T) {
	out, err := run(t, "irr", "-r", "0.05", "--", "-1000", "300", "300", "300", "300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "IRR = **7.71%**") || !strings.Contains(out, "ACCEPT") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestIrrCommandFailure(t *testing.T) {
	out, err := run(t, "irr", "--rate", "0.1", "--", "100", "100", "100", "100", "100")
	if !errors.Is(err, irr.ErrNoSignChange) {
		t.Fatalf("expected ErrNoSignChange, got %v", err)
	}
	if !strings.Contains(out, "Calculation aborted") {
		t.Fatalf("expected failure report, got:\n%s", out)
	}
}

func TestCalculationCommandInvalidInput(t *testing.T) {
	out, err := run(t, "npv", "--rate", "ten", "--", "1", "2", "3", "4", "5")
	if !errors.Is(err, validate.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if !strings.Contains(out, "valid numbers") {
		t.Fatalf("expected invalid input message, got:\n%s", out)
	}
}

func TestCalculationCommandArgs(t *testing.T) {
	if _, err := run(t, "npv", "--rate", "0.1", "--", "1", "2", "3"); err == nil {
		t.Fatal("expected error for three cash flows")
	}
	if _, err := run(t, "npv", "1", "2", "3", "4", "5"); err == nil {
		t.Fatal("expected error without --rate")
	}
	if _, err := run(t, "npv", "--rate", "0.1", "--format", "xml", "--", "1", "2", "3", "4", "5"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNpvCommandJSON(t *testing.T) {
	out, err := run(t, "npv", "--rate", "0.1", "--format", "json", "--", "-1000", "300", "300", "300", "300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp model.CalculationResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	calcs := resp.CalculationResult.Calculations
	if len(calcs) != 1 || calcs[0].Npv == nil || calcs[0].Npv.Decision != model.DecisionReject {
		t.Fatalf("unexpected response %+v", resp.CalculationResult)
	}
}

func TestIrrCommandJSONFailure(t *testing.T) {
	out, err := run(t, "irr", "--rate", "0.1", "-f", "json", "--", "-1", "1000", "0", "0", "0")
	if err == nil {
		t.Fatal("expected error for out-of-bounds IRR")
	}
	if !strings.Contains(out, `"OUT_OF_BOUNDS"`) {
		t.Fatalf("expected OUT_OF_BOUNDS code in output, got:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "npvcalc v"+Version) {
		t.Fatalf("unexpected version output:\n%s", out)
	}
}
