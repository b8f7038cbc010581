// Package backend is the development/stub back-office API the admin UI
// talks to. It persists the pizzeria records and serves them in the wire
// shapes the real service uses: flat denormalized rows on list endpoints,
// nested objects on detail endpoints. No business rules live here.
package backend

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pais is a country row.
type Pais struct {
	ID        string `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nome  string `gorm:"size:100;not null"`
	DDI   string `gorm:"size:5"`
	Sigla string `gorm:"size:3;uniqueIndex"`
}

func (p *Pais) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (Pais) TableName() string { return "paises" }

// Estado is a state row; UF is stored upper-cased.
type Estado struct {
	ID        string `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	PaisID string `gorm:"type:uuid;not null;index"`
	Pais   Pais   `gorm:"foreignKey:PaisID"`

	Nome  string `gorm:"size:100;not null"`
	UF    string `gorm:"size:2;not null;uniqueIndex"`
	Ativo bool   `gorm:"default:true"`
}

func (e *Estado) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

func (Estado) TableName() string { return "estados" }

// Cidade is a city row.
type Cidade struct {
	ID        string `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	EstadoID string `gorm:"type:uuid;not null;index"`
	Estado   Estado `gorm:"foreignKey:EstadoID"`

	Nome  string `gorm:"size:100;not null"`
	Ativo bool   `gorm:"default:true"`
}

func (c *Cidade) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (Cidade) TableName() string { return "cidades" }

// Pessoa groups the columns shared by clientes, fornecedores and
// transportadoras.
type Pessoa struct {
	CidadeID string `gorm:"type:uuid;index"`

	Telefone    string `gorm:"size:20"`
	Email       string `gorm:"size:100"`
	Endereco    string `gorm:"size:150"`
	Numero      string `gorm:"size:10"`
	Complemento string `gorm:"size:50"`
	Bairro      string `gorm:"size:60"`
	CEP         string `gorm:"size:10"`
	Ativo       bool   `gorm:"default:true"`
}

type Cliente struct {
	ID        string `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nome   string `gorm:"size:100;not null"`
	CPF    string `gorm:"size:14"`
	RG     string `gorm:"size:14"`
	Pessoa `gorm:"embedded"`
	Cidade Cidade `gorm:"foreignKey:CidadeID"`
}

func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (Cliente) TableName() string { return "clientes" }

type Fornecedor struct {
	ID        string `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nome              string `gorm:"size:100;not null"` // razão social
	NomeFantasia      string `gorm:"size:100"`
	CNPJ              string `gorm:"size:18"`
	InscricaoEstadual string `gorm:"size:20"`
	Pessoa            `gorm:"embedded"`
	Cidade            Cidade `gorm:"foreignKey:CidadeID"`
}

func (f *Fornecedor) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

func (Fornecedor) TableName() string { return "fornecedores" }

type Transportadora struct {
	ID        string `gorm:"type:uuid;primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nome              string `gorm:"size:100;not null"` // razão social
	CNPJ              string `gorm:"size:18"`
	InscricaoEstadual string `gorm:"size:20"`
	Pessoa            `gorm:"embedded"`
	Cidade            Cidade `gorm:"foreignKey:CidadeID"`
}

func (t *Transportadora) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (Transportadora) TableName() string { return "transportadoras" }

// Migrate runs the schema migrations for every backend model.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&Pais{}, &Estado{}, &Cidade{},
		&Cliente{}, &Fornecedor{}, &Transportadora{},
	)
}
