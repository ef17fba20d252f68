package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"store_backend/internal/feature/users/domain/entity"
	"store_backend/internal/shared/apperr"
)

// mockUserRepository はUserRepositoryインターフェースのモック実装です。
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id int) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	return m.FindByIDFunc(ctx, id)
}

// mockJWTGenerator はJWTGeneratorインターフェースのモック実装です。
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID int, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID int, email string) (string, error) {
	return m.GenerateTokenFunc(userID, email)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(hashed)
}

func TestSignup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputName string
		email     string
		password  string
		wantKind  apperr.Kind
	}{
		{"success", "Alice", "alice@example.com", "password123", ""},
		{"missing name", "", "alice@example.com", "password123", apperr.KindValidation},
		{"missing email", "Alice", "", "password123", apperr.KindValidation},
		{"missing password", "Alice", "alice@example.com", "", apperr.KindValidation},
		{"short password", "Alice", "alice@example.com", "short", apperr.KindValidation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			createCalls := 0
			repo := &mockUserRepository{
				CreateFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
					createCalls++
					created := *user
					created.ID = 1
					return &created, nil
				},
			}
			uc := NewUsersUsecase(repo, &mockJWTGenerator{})

			user, err := uc.Signup(context.Background(), tt.inputName, tt.email, tt.password)

			if tt.wantKind != "" {
				if !apperr.IsKind(err, tt.wantKind) {
					t.Fatalf("expected kind %q, got %v", tt.wantKind, err)
				}
				if createCalls != 0 {
					t.Errorf("expected repository not to be called, got %d calls", createCalls)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != 1 {
				t.Errorf("expected assigned id 1, got %d", user.ID)
			}
			// パスワードは平文で保存されない
			if user.Password == tt.password {
				t.Error("expected password to be hashed")
			}
			if !strings.HasPrefix(user.Password, "$2") {
				t.Errorf("expected a bcrypt hash, got %q", user.Password)
			}
			if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(tt.password)) != nil {
				t.Error("expected stored hash to verify against the original password")
			}
		})
	}
}

// TestSignup_DuplicateEmail はリポジトリのconflictがそのまま伝播することを検証します。
func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
			return nil, apperr.New(apperr.KindConflict, "email already exists")
		},
	}
	uc := NewUsersUsecase(repo, &mockJWTGenerator{})

	_, err := uc.Signup(context.Background(), "Alice", "alice@example.com", "password123")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	const password = "password123"
	stored := &entity.User{ID: 7, Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name     string
		email    string
		password string
		findErr  error
		wantKind apperr.Kind
	}{
		{"success", "alice@example.com", password, nil, ""},
		{"missing email", "", password, nil, apperr.KindValidation},
		{"missing password", "alice@example.com", "", nil, apperr.KindValidation},
		{"unknown email", "bob@example.com", password, apperr.New(apperr.KindNotFound, "user not found"), apperr.KindUnauthorized},
		{"wrong password", "alice@example.com", "wrong-password", nil, apperr.KindUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user := *stored
			user.Password = hashPassword(t, password)
			repo := &mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					return &user, nil
				},
			}
			gen := &mockJWTGenerator{
				GenerateTokenFunc: func(userID int, email string) (string, error) {
					return "signed-token", nil
				},
			}
			uc := NewUsersUsecase(repo, gen)

			got, token, err := uc.Login(context.Background(), tt.email, tt.password)

			if tt.wantKind != "" {
				if !apperr.IsKind(err, tt.wantKind) {
					t.Fatalf("expected kind %q, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != "signed-token" {
				t.Errorf("expected token, got %q", token)
			}
			if got.ID != stored.ID {
				t.Errorf("expected user id %d, got %d", stored.ID, got.ID)
			}
		})
	}
}

// TestLogin_IndistinguishableFailures は「メール未登録」と「パスワード不一致」が
// 同一のエラーメッセージを返すことを検証します。
func TestLogin_IndistinguishableFailures(t *testing.T) {
	t.Parallel()

	user := &entity.User{ID: 1, Email: "alice@example.com", Password: hashPassword(t, "password123")}
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		},
	}
	uc := NewUsersUsecase(repo, &mockJWTGenerator{})

	_, _, unknownEmailErr := uc.Login(context.Background(), "bob@example.com", "password123")
	_, _, wrongPasswordErr := uc.Login(context.Background(), "alice@example.com", "wrong")

	if unknownEmailErr == nil || wrongPasswordErr == nil {
		t.Fatal("expected both logins to fail")
	}
	if unknownEmailErr.Error() != wrongPasswordErr.Error() {
		t.Errorf("expected identical messages, got %q and %q",
			unknownEmailErr.Error(), wrongPasswordErr.Error())
	}
}

// TestLogin_StorageFailurePropagates はストレージ障害が認証失敗に変換されないことを検証します。
func TestLogin_StorageFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := apperr.Wrap(apperr.KindStorage, "failed to read document", errors.New("timeout"))
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, boom
		},
	}
	uc := NewUsersUsecase(repo, &mockJWTGenerator{})

	_, _, err := uc.Login(context.Background(), "alice@example.com", "password123")
	if !apperr.IsKind(err, apperr.KindStorage) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		findErr error
		want    bool
		wantErr bool
	}{
		{"user exists", nil, true, false},
		{"user missing", apperr.New(apperr.KindNotFound, "user not found"), false, false},
		{"storage failure", apperr.Wrap(apperr.KindStorage, "failed to read document", errors.New("timeout")), false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id int) (*entity.User, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					return &entity.User{ID: id}, nil
				},
			}
			uc := NewUsersUsecase(repo, &mockJWTGenerator{})

			got, err := uc.Exists(context.Background(), 1)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
