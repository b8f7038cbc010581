package backend

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Seed loads a starter location hierarchy on an empty database so the admin
// UI has something to pick from on first run. Idempotent: a database that
// already has countries is left alone.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&Pais{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect paises: %w", err)
	}
	if count > 0 {
		return nil
	}

	brasil := Pais{Nome: "Brasil", DDI: "55", Sigla: "BR"}
	if err := conn.Create(&brasil).Error; err != nil {
		return fmt.Errorf("failed to seed country: %w", err)
	}

	estados := []Estado{
		{Nome: "Paraná", UF: "PR", PaisID: brasil.ID, Ativo: true},
		{Nome: "Santa Catarina", UF: "SC", PaisID: brasil.ID, Ativo: true},
		{Nome: "São Paulo", UF: "SP", PaisID: brasil.ID, Ativo: true},
	}
	if err := conn.Create(&estados).Error; err != nil {
		return fmt.Errorf("failed to seed states: %w", err)
	}

	cidades := []Cidade{
		{Nome: "Curitiba", EstadoID: estados[0].ID, Ativo: true},
		{Nome: "Londrina", EstadoID: estados[0].ID, Ativo: true},
		{Nome: "Florianópolis", EstadoID: estados[1].ID, Ativo: true},
		{Nome: "Campinas", EstadoID: estados[2].ID, Ativo: true},
	}
	if err := conn.Create(&cidades).Error; err != nil {
		return fmt.Errorf("failed to seed cities: %w", err)
	}

	log.Printf("Seeded %d states and %d cities", len(estados), len(cidades))
	return nil
}
