// Package usecase はcartフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"store_backend/internal/feature/cart/domain/entity"
	"store_backend/internal/shared/apperr"
)

// CartRepository はカート行の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// マージや削除はカートドキュメントの更新ロック内で行われます。
type CartRepository interface {
	// AddLine はユーザーのカートに行を追加します。同じproductIdの行が既に
	// ある場合は数量を加算し、新しい行は作成しません。更新後の行リストを返します。
	AddLine(ctx context.Context, userID int, line entity.CartLine) ([]entity.CartLine, error)

	// Lines はユーザーのカート行を返します。カートが空の場合は空のスライスを返します。
	Lines(ctx context.Context, userID int) ([]entity.CartLine, error)

	// RemoveLine は指定されたproductIdの行を取り除き、更新後の行リストを返します。
	// ユーザーのカートエントリ自体が存在しない場合、not_foundエラーを返します。
	RemoveLine(ctx context.Context, userID int, productID string) ([]entity.CartLine, error)

	// Clear はユーザーのカート行を空にします（キーが無ければ作成します）。
	Clear(ctx context.Context, userID int) error
}

// UserDirectory はuserIdの認可チェックに使用するユーザー検索のインターフェースです。
type UserDirectory interface {
	// Exists は指定されたIDのユーザーが存在するかを返します。
	Exists(ctx context.Context, userID int) (bool, error)
}

// cartUsecase はカート操作のビジネスロジックを実装します。
type cartUsecase struct {
	carts CartRepository
	users UserDirectory
}

// NewCartUsecase はcartUsecaseの新しいインスタンスを生成します。
func NewCartUsecase(carts CartRepository, users UserDirectory) *cartUsecase {
	return &cartUsecase{carts: carts, users: users}
}

// authorize はuserIdが既存ユーザーを指しているか検証します。
// 認可に失敗した操作はカートドキュメントに一切触れません。
func (u *cartUsecase) authorize(ctx context.Context, userID int) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.KindUnauthorized, "user not authorized")
	}
	return nil
}

// Add は商品をユーザーのカートに追加し、更新後の行リストを返します。
// 既存行がある場合は数量のみ加算し、既存行の名前と価格は更新しません。
func (u *cartUsecase) Add(ctx context.Context, userID int, line entity.CartLine) ([]entity.CartLine, error) {
	if userID <= 0 || line.ProductID == "" || line.Name == "" || line.Price <= 0 {
		return nil, apperr.New(apperr.KindValidation, "missing required fields")
	}
	if line.Quantity < 1 {
		return nil, apperr.New(apperr.KindValidation, "quantity must be at least 1")
	}
	if err := u.authorize(ctx, userID); err != nil {
		return nil, err
	}
	return u.carts.AddLine(ctx, userID, line)
}

// Get はユーザーのカート行を返します。カートが無い場合は空のスライスを返します。
func (u *cartUsecase) Get(ctx context.Context, userID int) ([]entity.CartLine, error) {
	if err := u.authorize(ctx, userID); err != nil {
		return nil, err
	}
	return u.carts.Lines(ctx, userID)
}

// Remove は指定された商品をユーザーのカートから取り除き、更新後の行リストを返します。
func (u *cartUsecase) Remove(ctx context.Context, userID int, productID string) ([]entity.CartLine, error) {
	if userID <= 0 || productID == "" {
		return nil, apperr.New(apperr.KindValidation, "missing userId or productId")
	}
	if err := u.authorize(ctx, userID); err != nil {
		return nil, err
	}
	return u.carts.RemoveLine(ctx, userID, productID)
}

// Clear はユーザーのカートを空にします。
func (u *cartUsecase) Clear(ctx context.Context, userID int) error {
	if userID <= 0 {
		return apperr.New(apperr.KindValidation, "missing userId")
	}
	if err := u.authorize(ctx, userID); err != nil {
		return err
	}
	return u.carts.Clear(ctx, userID)
}
