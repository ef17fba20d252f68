// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"store_backend/internal/feature/users/domain/entity"
	"store_backend/internal/shared/apperr"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをユーザードキュメントに追加し、IDを採番して返します。
	// 同じメールアドレスのユーザーが既に存在する場合、conflictエラーを返します。
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、not_foundエラーを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、not_foundエラーを返します。
	FindByID(ctx context.Context, id int) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID int, email string) (string, error)
}

// usersUsecase はユーザー管理のビジネスロジックを実装します。
type usersUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewUsersUsecase はusersUsecaseの新しいインスタンスを生成します。
func NewUsersUsecase(users UserRepository, jwtGenerator JWTGenerator) *usersUsecase {
	return &usersUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、採番済みのユーザーを返します。
// メールアドレスの一意性はリポジトリ側でドキュメント更新ロック内に検証されます。
func (u *usersUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.New(apperr.KindValidation, "missing required fields")
	}
	if len(password) < minPasswordLength {
		return nil, apperr.Newf(apperr.KindValidation,
			"password must be at least %d characters long", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にユーザーと署名済みJWTトークンを返します。
// 「メール未登録」と「パスワード不一致」は意図的に区別しません（登録済みメールアドレスの
// 列挙を防ぐため）。タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *usersUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.New(apperr.KindValidation, "missing email or password")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		// ストレージ障害は認証失敗に変換せず、そのまま伝播させる
		return nil, "", err
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return user, token, nil
}

// Exists は指定されたIDのユーザーが存在するかを返します。
// CartStoreなどの認可チェックで使用されます。
func (u *usersUsecase) Exists(ctx context.Context, id int) (bool, error) {
	_, err := u.users.FindByID(ctx, id)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
