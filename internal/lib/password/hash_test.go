package password

import (
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		cost     int
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "password123",
			cost:     DefaultCost,
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			cost:     DefaultCost,
			wantErr:  false,
		},
		{
			name:     "zero cost falls back to default",
			password: "pw123",
			cost:     0,
			wantErr:  false,
		},
		{
			name:     "short password",
			password: "short",
			cost:     4,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password, tt.cost)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetHash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("GetHash() returned empty hash")
			}

			if !tt.wantErr && gotHash == tt.password {
				t.Error("GetHash() returned the plaintext password")
			}

			if !tt.wantErr {
				err = CompareHash(gotHash, tt.password)
				if err != nil {
					t.Errorf("Generated hash doesn't work with original password: %v", err)
				}
			}
		})
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("correct_password", DefaultCost)
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  bool
	}{
		{
			name:     "matching password",
			hash:     correctHash,
			password: "correct_password",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			hash:     correctHash,
			password: "wrong_password",
			wantErr:  true,
		},
		{
			name:     "empty password",
			hash:     correctHash,
			password: "",
			wantErr:  true,
		},
		{
			name:     "not a bcrypt hash",
			hash:     "plaintext",
			password: "plaintext",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("CompareHash() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("same_password", DefaultCost)
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}
	second, err := GetHash("same_password", DefaultCost)
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ due to random salt")
	}
}
