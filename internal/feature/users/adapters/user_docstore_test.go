package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"store_backend/internal/feature/users/domain/entity"
	"store_backend/internal/platform/docstore"
	"store_backend/internal/shared/apperr"
)

func newTestRepo() (*userDocstore, *docstore.MemStore) {
	store := docstore.NewMemStore()
	col := docstore.NewCollection(store, "json/users.json",
		func() []entity.User { return []entity.User{} })
	return NewUserDocstore(col), store
}

func TestUserDocstore_Create(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com", Password: "hash-a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 1, first.ID)

	second, err := repo.Create(ctx, &entity.User{Name: "Bob", Email: "bob@example.com", Password: "hash-b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 2, second.ID)
}

// TestUserDocstore_Create_DuplicateEmail は重複メールがconflictになり、
// ドキュメントが変更されないことを検証します。
func TestUserDocstore_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com", Password: "hash-a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.Create(ctx, &entity.User{Name: "Imposter", Email: "alice@example.com", Password: "hash-x"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// 失敗したサインアップはユーザーを追加しない
	user, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "Alice", user.Name)

	_, err = repo.FindByID(ctx, 2)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

// TestUserDocstore_Create_IDAfterMax は途中のユーザーが消えてもIDが再利用されない
// ことを検証します（最大ID+1で採番）。
func TestUserDocstore_Create_IDAfterMax(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemStore()
	store.Seed("json/users.json", []byte(`[
  {"id": 1, "name": "Alice", "email": "alice@example.com", "password": "hash-a"},
  {"id": 5, "name": "Eve", "email": "eve@example.com", "password": "hash-e"}
]`), "application/json")
	col := docstore.NewCollection(store, "json/users.json",
		func() []entity.User { return []entity.User{} })
	repo := NewUserDocstore(col)

	created, err := repo.Create(context.Background(), &entity.User{Name: "Bob", Email: "bob@example.com", Password: "hash-b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 6, created.ID)
}

func TestUserDocstore_FindByEmail(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com", Password: "hash-a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "hash-a", user.Password)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserDocstore_FindByID(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com", Password: "hash-a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

// TestUserDocstore_InitializesDocument は最初の読み取りで空配列のドキュメントが
// 作成されることを検証します。
func TestUserDocstore_InitializesDocument(t *testing.T) {
	t.Parallel()

	repo, store := newTestRepo()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	data, err := store.Get(ctx, "json/users.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.JSONEq(t, `[]`, string(data))
}
