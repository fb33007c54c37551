package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	baseModel "github.com/RimshaSaif36/Classic-Decor-sub000/pkg/model"
)

// StringList stores a string slice as jsonb in postgres and as a plain JSON
// array in the flat-file store.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	return string(data), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported StringList source: %T", value)
	}
}

// Product is a catalog item.
type Product struct {
	baseModel.BaseModel
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `gorm:"index" json:"category"`
	Sizes       StringList `gorm:"type:jsonb" json:"sizes"`
	Colors      StringList `gorm:"type:jsonb" json:"colors"`
	Images      StringList `gorm:"type:jsonb" json:"images"`
	Featured    bool       `gorm:"index" json:"featured"`
	Stock       int        `json:"stock"`
}

// Review is customer feedback on a product.
type Review struct {
	baseModel.BaseModel
	ProductID string `gorm:"index" json:"productId"`
	UserID    string `json:"userId,omitempty"` // empty for guest reviews
	Author    string `json:"author"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
}

// Sort orders accepted by the product listing.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)
