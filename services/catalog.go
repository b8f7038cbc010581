package services

import (
	"pizzeria_admin_go/adapters"
	"pizzeria_admin_go/api"
	"pizzeria_admin_go/models"
)

// Registry bundles the per-entity services over one API client.
type Registry struct {
	Countries *EntityService[models.Country]
	States    *EntityService[models.State]
	Cities    *EntityService[models.City]
	Clients   *EntityService[models.Client]
	Suppliers *EntityService[models.Supplier]
	Carriers  *EntityService[models.Carrier]
}

func NewRegistry(client *api.Client) *Registry {
	return &Registry{
		Countries: NewCountryService(client),
		States:    NewStateService(client),
		Cities:    NewCityService(client),
		Clients:   NewClientService(client),
		Suppliers: NewSupplierService(client),
		Carriers:  NewCarrierService(client),
	}
}

func NewCountryService(client *api.Client) *EntityService[models.Country] {
	return &EntityService[models.Country]{
		api:         client,
		path:        "/paises",
		fromPayload: adapters.CountryFromPayload,
		listDecode:  adapters.CountriesFromPayload,
		toPayload:   adapters.CountryToPayload,
	}
}

func NewStateService(client *api.Client) *EntityService[models.State] {
	return &EntityService[models.State]{
		api:         client,
		path:        "/estados",
		fromPayload: adapters.StateFromPayload,
		listDecode:  adapters.StatesFromPayload,
		toPayload:   adapters.StateToPayload,
	}
}

func NewCityService(client *api.Client) *EntityService[models.City] {
	return &EntityService[models.City]{
		api:         client,
		path:        "/cidades",
		fromPayload: adapters.CityFromPayload,
		listDecode:  adapters.CitiesFromPayload,
		toPayload:   adapters.CityToPayload,
	}
}

func NewClientService(client *api.Client) *EntityService[models.Client] {
	return &EntityService[models.Client]{
		api:         client,
		path:        "/clientes",
		fromPayload: adapters.ClientFromPayload,
		listDecode:  adapters.ClientsFromPayload,
		toPayload:   adapters.ClientToPayload,
	}
}

func NewSupplierService(client *api.Client) *EntityService[models.Supplier] {
	return &EntityService[models.Supplier]{
		api:         client,
		path:        "/fornecedores",
		fromPayload: adapters.SupplierFromPayload,
		listDecode:  adapters.SuppliersFromPayload,
		toPayload:   adapters.SupplierToPayload,
	}
}

func NewCarrierService(client *api.Client) *EntityService[models.Carrier] {
	return &EntityService[models.Carrier]{
		api:         client,
		path:        "/transportadoras",
		fromPayload: adapters.CarrierFromPayload,
		listDecode:  adapters.CarriersFromPayload,
		toPayload:   adapters.CarrierToPayload,
	}
}
