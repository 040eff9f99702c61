package password

import (
	"strings"
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			wantErr:  false,
		},
		{
			name:     "temporary style password",
			password: "Kd8!mQz2@wXr",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetHash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("GetHash() returned empty hash")
			}

			if !tt.wantErr {
				if err := CompareHash(gotHash, tt.password); err != nil {
					t.Errorf("Generated hash doesn't work with original password: %v", err)
				}
			}
		})
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("correct_password")
	if err != nil {
		t.Fatalf("Failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		hash        string
		password    string
		shouldMatch bool
	}{
		{
			name:        "matching password",
			hash:        correctHash,
			password:    "correct_password",
			shouldMatch: true,
		},
		{
			name:        "wrong password",
			hash:        correctHash,
			password:    "wrong_password",
			shouldMatch: false,
		},
		{
			name:        "empty password",
			hash:        correctHash,
			password:    "",
			shouldMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)

			if tt.shouldMatch && err != nil {
				t.Errorf("CompareHash() should succeed, got error: %v", err)
			}

			if !tt.shouldMatch && err == nil {
				t.Error("CompareHash() should fail, but got no error")
			}
		})
	}
}

func TestCompareHash_SeededAdminDefault(t *testing.T) {
	// Хэш из сид-миграции, пароль по умолчанию "admin".
	const seedHash = "$2b$12$bF9/3pVaCM6L8BGZokmM8ecGfiY/WcKoIa/jv03gRrBTr2VQkVb2C"

	if err := CompareHash(seedHash, "admin"); err != nil {
		t.Errorf("seed hash should match default password: %v", err)
	}
	if err := CompareHash(seedHash, "not-admin"); err == nil {
		t.Error("seed hash should not match arbitrary password")
	}
}

func TestGenerate(t *testing.T) {
	pwd, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(pwd) != TempPasswordLength {
		t.Errorf("Generate() length = %d, want %d", len(pwd), TempPasswordLength)
	}

	for _, r := range pwd {
		if !strings.ContainsRune(tempAlphabet, r) {
			t.Errorf("Generate() produced character outside alphabet: %q", r)
		}
	}
}

func TestGenerate_SubsequentPasswordsDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		pwd, err := Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[pwd] {
			t.Fatalf("Generate() produced duplicate password %q", pwd)
		}
		seen[pwd] = true
	}
}
