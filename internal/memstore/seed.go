package memstore

import (
	"context"
	"time"

	"storehub/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates the store with the demo dataset used when running without
// a database: one branch, two products with stock, a customer, a sale, and
// an admin plus a staff user (passwords "admin123" / "staff123").
func Seed(s *Store) error {
	ctx := context.Background()

	downtown := "Downtown"
	if err := s.Branches().Create(ctx, &model.Branch{Name: "Main Branch", Address: &downtown}); err != nil {
		return err
	}

	grocery := "Grocery"
	dairy := "Dairy"
	rice := model.Product{Name: "Rice 5kg", Category: &grocery, UnitPrice: decimal.NewFromFloat(8.99)}
	milk := model.Product{Name: "Milk 1L", Category: &dairy, UnitPrice: decimal.NewFromFloat(1.20)}
	if err := s.Products().Create(ctx, &rice); err != nil {
		return err
	}
	if err := s.Products().Create(ctx, &milk); err != nil {
		return err
	}

	for _, inv := range []model.Inventory{
		{BranchID: 1, ProductID: rice.ID, Quantity: decimal.NewFromInt(120), MinThreshold: decimal.NewFromInt(20)},
		{BranchID: 1, ProductID: milk.ID, Quantity: decimal.NewFromInt(30), MinThreshold: decimal.NewFromInt(15)},
	} {
		inv := inv
		if err := s.Inventories().Create(ctx, &inv); err != nil {
			return err
		}
	}

	johnEmail := "john@example.com"
	johnPhone := "0123456789"
	john := model.Customer{Name: "John Doe", Email: &johnEmail, Phone: &johnPhone, BranchID: 1}
	if err := s.Customers().Create(ctx, &john); err != nil {
		return err
	}

	branch1 := 1
	for _, u := range []struct {
		email, password, role string
		branchID              *int
	}{
		{"admin@mail.com", "admin123", model.RoleAdmin, nil},
		{"staff@mail.com", "staff123", model.RoleStaff, &branch1},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), model.PasswordHashCost)
		if err != nil {
			return err
		}
		user := model.User{Email: u.email, PasswordHash: string(hash), Role: u.role, BranchID: u.branchID}
		if err := s.Users().Create(ctx, &user); err != nil {
			return err
		}
	}

	qty := decimal.NewFromInt(2)
	sale := model.Sale{
		BranchID:   1,
		ProductID:  rice.ID,
		CustomerID: &john.ID,
		Quantity:   qty,
		TotalPrice: rice.UnitPrice.Mul(qty),
		SaleDate:   time.Now().UTC().Truncate(24 * time.Hour),
		StaffID:    2,
	}
	if err := s.Sales().Create(ctx, nil, &sale); err != nil {
		return err
	}
	return s.Inventories().DecrementQuantityTx(nil, 1, rice.ID, qty)
}
