package service

import "testing"

func TestPasswordService_MeetsPolicy(t *testing.T) {
	svc := NewPasswordService(4)

	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Valid1Pass!", true},
		{"too short", "short1!", false},
		{"no uppercase", "alllowercase1!", false},
		{"no lowercase", "ALLUPPER1!", false},
		{"no digit", "NoDigits!!", false},
		{"no symbol", "NoSymbol123", false},
		{"disallowed character", "Valid1Pass^", false},
		{"empty", "", false},
		{"at minimum length", "Aa1!Aa1!", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.MeetsPolicy(tc.password); got != tc.want {
				t.Fatalf("MeetsPolicy(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestPasswordService_MeetsPolicy_MaxLength(t *testing.T) {
	svc := NewPasswordService(4)

	base := "Aa1!"
	long := base
	for len(long) < 100 {
		long += "x"
	}
	if !svc.MeetsPolicy(long) {
		t.Fatalf("expected 100-char password to pass")
	}
	if svc.MeetsPolicy(long + "x") {
		t.Fatalf("expected 101-char password to fail")
	}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(4)

	hash, err := svc.Hash("Valid1Pass!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Valid1Pass!" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !svc.Verify("Valid1Pass!", hash) {
		t.Fatalf("Verify failed for matching password")
	}
	if svc.Verify("Wrong1Pass!", hash) {
		t.Fatalf("Verify succeeded for wrong password")
	}
}

func TestPasswordService_HashIsSalted(t *testing.T) {
	svc := NewPasswordService(4)

	h1, err := svc.Hash("Valid1Pass!")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	h2, err := svc.Hash("Valid1Pass!")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !svc.Verify("Valid1Pass!", h1) || !svc.Verify("Valid1Pass!", h2) {
		t.Fatalf("both hashes must verify")
	}
}

func TestNewPasswordService_CostFallback(t *testing.T) {
	svc := NewPasswordService(0)
	if svc.cost != 12 {
		t.Fatalf("expected fallback cost 12, got %d", svc.cost)
	}

	svc = NewPasswordService(99)
	if svc.cost != 12 {
		t.Fatalf("expected fallback cost 12 for out-of-range cost, got %d", svc.cost)
	}
}
