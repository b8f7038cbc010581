package backend

import "time"

// The two response dialects. List endpoints answer flat rows with the
// relation denormalized into scalar fields; detail endpoints answer nested
// objects. The admin UI's adapters normalize both to the same graph.

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func paisWire(p Pais) map[string]any {
	return map[string]any{
		"id":    p.ID,
		"nome":  p.Nome,
		"ddi":   p.DDI,
		"sigla": p.Sigla,
	}
}

func estadoFlat(e Estado) map[string]any {
	return map[string]any{
		"id":                    e.ID,
		"nome":                  e.Nome,
		"uf":                    e.UF,
		"ativo":                 e.Ativo,
		"dataCadastro":          stamp(e.CreatedAt),
		"dataUltimaModificacao": stamp(e.UpdatedAt),
		"paisId":                e.PaisID,
		"paisNome":              e.Pais.Nome,
		"paisDdi":               e.Pais.DDI,
		"paisSigla":             e.Pais.Sigla,
	}
}

func estadoNested(e Estado) map[string]any {
	return map[string]any{
		"id":                    e.ID,
		"nome":                  e.Nome,
		"uf":                    e.UF,
		"ativo":                 e.Ativo,
		"dataCadastro":          stamp(e.CreatedAt),
		"dataUltimaModificacao": stamp(e.UpdatedAt),
		"pais":                  paisWire(e.Pais),
	}
}

func cidadeFlat(c Cidade) map[string]any {
	return map[string]any{
		"id":                    c.ID,
		"nome":                  c.Nome,
		"ativo":                 c.Ativo,
		"dataCadastro":          stamp(c.CreatedAt),
		"dataUltimaModificacao": stamp(c.UpdatedAt),
		"estadoId":              c.EstadoID,
		"estadoNome":            c.Estado.Nome,
		"estadoUf":              c.Estado.UF,
		"paisId":                c.Estado.PaisID,
		"paisNome":              c.Estado.Pais.Nome,
	}
}

func cidadeNested(c Cidade) map[string]any {
	return map[string]any{
		"id":                    c.ID,
		"nome":                  c.Nome,
		"ativo":                 c.Ativo,
		"dataCadastro":          stamp(c.CreatedAt),
		"dataUltimaModificacao": stamp(c.UpdatedAt),
		"estado":                estadoNested(c.Estado),
	}
}

func pessoaWire(p Pessoa) map[string]any {
	return map[string]any{
		"telefone":    p.Telefone,
		"email":       p.Email,
		"endereco":    p.Endereco,
		"numero":      p.Numero,
		"complemento": p.Complemento,
		"bairro":      p.Bairro,
		"cep":         p.CEP,
		"ativo":       p.Ativo,
	}
}

func clienteFlat(c Cliente) map[string]any {
	record := pessoaWire(c.Pessoa)
	record["id"] = c.ID
	record["nome"] = c.Nome
	record["cpf"] = c.CPF
	record["rg"] = c.RG
	record["dataCadastro"] = stamp(c.CreatedAt)
	record["dataUltimaModificacao"] = stamp(c.UpdatedAt)
	record["cidadeId"] = c.CidadeID
	record["cidadeNome"] = c.Cidade.Nome
	record["estadoId"] = c.Cidade.EstadoID
	record["estadoNome"] = c.Cidade.Estado.Nome
	record["estadoUf"] = c.Cidade.Estado.UF
	record["paisId"] = c.Cidade.Estado.PaisID
	record["paisNome"] = c.Cidade.Estado.Pais.Nome
	return record
}

func clienteNested(c Cliente) map[string]any {
	record := pessoaWire(c.Pessoa)
	record["id"] = c.ID
	record["nome"] = c.Nome
	record["cpf"] = c.CPF
	record["rg"] = c.RG
	record["dataCadastro"] = stamp(c.CreatedAt)
	record["dataUltimaModificacao"] = stamp(c.UpdatedAt)
	record["cidade"] = cidadeNested(c.Cidade)
	return record
}

func fornecedorFlat(f Fornecedor) map[string]any {
	record := pessoaWire(f.Pessoa)
	record["id"] = f.ID
	record["razaoSocial"] = f.Nome
	record["nomeFantasia"] = f.NomeFantasia
	record["cnpj"] = f.CNPJ
	record["inscricaoEstadual"] = f.InscricaoEstadual
	record["dataCadastro"] = stamp(f.CreatedAt)
	record["dataUltimaModificacao"] = stamp(f.UpdatedAt)
	record["cidadeId"] = f.CidadeID
	record["cidadeNome"] = f.Cidade.Nome
	record["estadoId"] = f.Cidade.EstadoID
	record["estadoNome"] = f.Cidade.Estado.Nome
	record["estadoUf"] = f.Cidade.Estado.UF
	record["paisId"] = f.Cidade.Estado.PaisID
	record["paisNome"] = f.Cidade.Estado.Pais.Nome
	return record
}

func fornecedorNested(f Fornecedor) map[string]any {
	record := pessoaWire(f.Pessoa)
	record["id"] = f.ID
	record["razaoSocial"] = f.Nome
	record["nomeFantasia"] = f.NomeFantasia
	record["cnpj"] = f.CNPJ
	record["inscricaoEstadual"] = f.InscricaoEstadual
	record["dataCadastro"] = stamp(f.CreatedAt)
	record["dataUltimaModificacao"] = stamp(f.UpdatedAt)
	record["cidade"] = cidadeNested(f.Cidade)
	return record
}

func transportadoraFlat(tr Transportadora) map[string]any {
	record := pessoaWire(tr.Pessoa)
	record["id"] = tr.ID
	record["nome"] = tr.Nome
	record["cnpj"] = tr.CNPJ
	record["inscricaoEstadual"] = tr.InscricaoEstadual
	record["dataCadastro"] = stamp(tr.CreatedAt)
	record["dataUltimaModificacao"] = stamp(tr.UpdatedAt)
	record["cidadeId"] = tr.CidadeID
	record["cidadeNome"] = tr.Cidade.Nome
	record["estadoId"] = tr.Cidade.EstadoID
	record["estadoNome"] = tr.Cidade.Estado.Nome
	record["estadoUf"] = tr.Cidade.Estado.UF
	record["paisId"] = tr.Cidade.Estado.PaisID
	record["paisNome"] = tr.Cidade.Estado.Pais.Nome
	return record
}

func transportadoraNested(tr Transportadora) map[string]any {
	record := pessoaWire(tr.Pessoa)
	record["id"] = tr.ID
	record["nome"] = tr.Nome
	record["cnpj"] = tr.CNPJ
	record["inscricaoEstadual"] = tr.InscricaoEstadual
	record["dataCadastro"] = stamp(tr.CreatedAt)
	record["dataUltimaModificacao"] = stamp(tr.UpdatedAt)
	record["cidade"] = cidadeNested(tr.Cidade)
	return record
}
