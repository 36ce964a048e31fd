package query

import "testing"

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	tokens, ok, err := Tokenize("Cat AND Dog")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	want := Tokens{"cat", "and", "dog"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeEmptyQueryIsNotAnError(t *testing.T) {
	tokens, ok, err := Tokenize("   ")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if ok {
		t.Error("ok = true, want false for a blank query")
	}
	if tokens != nil {
		t.Errorf("tokens = %v, want nil", tokens)
	}
}

func TestTokenizeRejectsNonLetterCharacters(t *testing.T) {
	for _, line := range []string{"cat2", "cat-dog", "cat!", "café"} {
		if _, _, err := Tokenize(line); err == nil {
			t.Errorf("Tokenize(%q) err = nil, want error", line)
		}
	}
}

func TestTokenizeIsIdempotentOnItsOwnOutput(t *testing.T) {
	tokens, _, err := Tokenize("Cat and Dog or Bird")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	again, _, err := Tokenize(tokens.String())
	if err != nil {
		t.Fatalf("Tokenize(String()): %v", err)
	}
	if tokens.String() != again.String() {
		t.Errorf("round trip mismatch: %q vs %q", tokens.String(), again.String())
	}
}

func TestValidateGrammar(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"single word", "cat", false},
		{"implicit and", "cat dog", false},
		{"explicit and", "cat and dog", false},
		{"explicit or", "cat or dog", false},
		{"mixed precedence", "cat dog or bird", false},
		{"operator first", "and cat", true},
		{"operator last", "cat or", true},
		{"adjacent operators", "cat or and bird", true},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, _, err := Tokenize(tc.query)
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			err = Validate(tokens)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%q) err = %v, wantErr %v", tc.query, err, tc.wantErr)
			}
		})
	}
}
