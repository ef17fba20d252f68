// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"store_backend/internal/feature/users/domain/entity"
	"store_backend/internal/feature/users/usecase"
	"store_backend/internal/platform/docstore"
	"store_backend/internal/shared/apperr"
)

// userDocstore はUserRepositoryインターフェースのドキュメントストア実装です。
// 全ユーザーを1つのJSONドキュメント（配列）として読み書きします。
type userDocstore struct {
	col *docstore.Collection[[]entity.User]
}

// userDocstoreがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userDocstore)(nil)

// NewUserDocstore は指定されたコレクションでuserDocstoreの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserDocstore(col *docstore.Collection[[]entity.User]) *userDocstore {
	return &userDocstore{col: col}
}

// Create はユーザーをドキュメントに追加し、IDを採番して返します。
// 重複チェックとID採番はコレクションの更新ロック内で行われるため、
// 並行サインアップでもIDが衝突することはありません。
func (r *userDocstore) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	created := *u
	_, err := r.col.Update(ctx, func(users []entity.User) ([]entity.User, error) {
		maxID := 0
		for _, existing := range users {
			if existing.Email == u.Email {
				return nil, apperr.New(apperr.KindConflict, "email already exists")
			}
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		created.ID = maxID + 1
		return append(users, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、not_foundエラーを返します。
func (r *userDocstore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.col.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "user not found")
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、not_foundエラーを返します。
func (r *userDocstore) FindByID(ctx context.Context, id int) (*entity.User, error) {
	users, err := r.col.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "user not found")
}
