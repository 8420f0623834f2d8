package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Product представляет товар каталога.
// Размеры хранятся в базе одной текстовой колонкой как JSON-массив строк.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Style       string    `json:"style"`
	Sizes       SizeList  `json:"sizes"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SizeList — упорядоченный список размеров товара.
// В JSON принимается и как массив строк, и как заранее сериализованная
// строка с таким массивом; в обоих случаях приводится к каноническому виду.
type SizeList []string

// UnmarshalJSON принимает ["S","M"] либо "[\"S\",\"M\"]".
func (s *SizeList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("sizes must be an array of strings or a serialized array")
	}
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return fmt.Errorf("sizes: %w", err)
	}
	*s = arr
	return nil
}

// Value сериализует список размеров для записи в текстовую колонку.
func (s SizeList) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan читает список размеров из текстовой колонки.
func (s *SizeList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(s))
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("sizes: unsupported source type %T", src)
	}
}

// DummyProduct используется для приёма данных нового товара из JSON-запроса,
// прежде чем конвертировать их в Product. Необязательные поля — указатели,
// чтобы отличать отсутствующее значение от нулевого.
type DummyProduct struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Style       string   `json:"style" validate:"required"`
	Sizes       SizeList `json:"sizes" validate:"required"`
	ImageURL    string   `json:"image_url"`
	Stock       *int     `json:"stock"`
}

// ProductPatch описывает частичное обновление товара: применяются только
// заполненные поля, остальные колонки остаются как были.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Style       *string   `json:"style"`
	Sizes       *SizeList `json:"sizes"`
	ImageURL    *string   `json:"image_url"`
	Stock       *int      `json:"stock"`
}

// ProductFilter задаёт необязательные условия выборки каталога.
// Все условия комбинируются через AND.
type ProductFilter struct {
	Style    string   // Точное совпадение стиля
	MinPrice *float64 // Нижняя граница цены (включительно)
	MaxPrice *float64 // Верхняя граница цены (включительно)
	Search   string   // Подстрока в имени или описании, без учёта регистра
}
