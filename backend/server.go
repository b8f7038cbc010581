package backend

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Server struct {
	DB *gorm.DB
}

// Register wires the back-office API routes onto an Echo instance.
func Register(e *echo.Echo, conn *gorm.DB) *Server {
	s := &Server{DB: conn}

	e.GET("/paises", s.ListPaises)
	e.GET("/paises/:id", s.GetPais)
	e.POST("/paises", s.CreatePais)
	e.PUT("/paises/:id", s.UpdatePais)
	e.DELETE("/paises/:id", s.DeletePais)

	e.GET("/estados", s.ListEstados)
	e.GET("/estados/:id", s.GetEstado)
	e.POST("/estados", s.CreateEstado)
	e.PUT("/estados/:id", s.UpdateEstado)
	e.DELETE("/estados/:id", s.DeleteEstado)

	e.GET("/cidades", s.ListCidades)
	e.GET("/cidades/:id", s.GetCidade)
	e.POST("/cidades", s.CreateCidade)
	e.PUT("/cidades/:id", s.UpdateCidade)
	e.DELETE("/cidades/:id", s.DeleteCidade)

	e.GET("/clientes", s.ListClientes)
	e.GET("/clientes/:id", s.GetCliente)
	e.POST("/clientes", s.CreateCliente)
	e.PUT("/clientes/:id", s.UpdateCliente)
	e.DELETE("/clientes/:id", s.DeleteCliente)

	e.GET("/fornecedores", s.ListFornecedores)
	e.GET("/fornecedores/:id", s.GetFornecedor)
	e.POST("/fornecedores", s.CreateFornecedor)
	e.PUT("/fornecedores/:id", s.UpdateFornecedor)
	e.DELETE("/fornecedores/:id", s.DeleteFornecedor)

	e.GET("/transportadoras", s.ListTransportadoras)
	e.GET("/transportadoras/:id", s.GetTransportadora)
	e.POST("/transportadoras", s.CreateTransportadora)
	e.PUT("/transportadoras/:id", s.UpdateTransportadora)
	e.DELETE("/transportadoras/:id", s.DeleteTransportadora)

	return s
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"message": message})
}

func bindPayload(c echo.Context) (map[string]any, error) {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func getBool(m map[string]any, key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// ---- paises ----

func (s *Server) ListPaises(c echo.Context) error {
	var paises []Pais
	if err := s.DB.Order("nome").Find(&paises).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "falha ao listar países")
	}
	rows := make([]map[string]any, 0, len(paises))
	for _, p := range paises {
		rows = append(rows, paisWire(p))
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) GetPais(c echo.Context) error {
	var p Pais
	if err := s.DB.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "país não encontrado")
	}
	return c.JSON(http.StatusOK, paisWire(p))
}

func (s *Server) CreatePais(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	p := Pais{
		Nome:  getString(payload, "nome"),
		DDI:   getString(payload, "ddi"),
		Sigla: strings.ToUpper(getString(payload, "sigla")),
	}
	if p.Nome == "" || p.Sigla == "" {
		return fail(c, http.StatusBadRequest, "nome e sigla são obrigatórios")
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao criar país")
	}
	return c.JSON(http.StatusCreated, paisWire(p))
}

func (s *Server) UpdatePais(c echo.Context) error {
	var p Pais
	if err := s.DB.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "país não encontrado")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	p.Nome = getString(payload, "nome")
	p.DDI = getString(payload, "ddi")
	p.Sigla = strings.ToUpper(getString(payload, "sigla"))
	if err := s.DB.Save(&p).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao atualizar país")
	}
	return c.JSON(http.StatusOK, paisWire(p))
}

func (s *Server) DeletePais(c echo.Context) error {
	if err := s.DB.Delete(&Pais{}, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao excluir país")
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- estados ----

func (s *Server) ListEstados(c echo.Context) error {
	var estados []Estado
	if err := s.DB.Preload("Pais").Order("nome").Find(&estados).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "falha ao listar estados")
	}
	rows := make([]map[string]any, 0, len(estados))
	for _, e := range estados {
		rows = append(rows, estadoFlat(e))
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) GetEstado(c echo.Context) error {
	var e Estado
	if err := s.DB.Preload("Pais").First(&e, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "estado não encontrado")
	}
	return c.JSON(http.StatusOK, estadoNested(e))
}

func (s *Server) CreateEstado(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	e := Estado{
		Nome:   getString(payload, "nome"),
		UF:     strings.ToUpper(getString(payload, "uf")),
		PaisID: getString(payload, "paisId"),
		Ativo:  getBool(payload, "ativo", true),
	}
	if e.Nome == "" || utf8.RuneCountInString(e.UF) != 2 {
		return fail(c, http.StatusBadRequest, "nome e uf (2 caracteres) são obrigatórios")
	}
	if err := s.DB.First(&Pais{}, "id = ?", e.PaisID).Error; err != nil {
		return fail(c, http.StatusBadRequest, "paisId inexistente")
	}
	if err := s.DB.Create(&e).Error; err != nil {
		return fail(c, http.StatusConflict, "uf já cadastrada")
	}
	s.DB.Preload("Pais").First(&e, "id = ?", e.ID)
	return c.JSON(http.StatusCreated, estadoNested(e))
}

func (s *Server) UpdateEstado(c echo.Context) error {
	var e Estado
	if err := s.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "estado não encontrado")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	e.Nome = getString(payload, "nome")
	e.UF = strings.ToUpper(getString(payload, "uf"))
	if paisID := getString(payload, "paisId"); paisID != "" {
		e.PaisID = paisID
	}
	e.Ativo = getBool(payload, "ativo", e.Ativo)
	if e.Nome == "" || utf8.RuneCountInString(e.UF) != 2 {
		return fail(c, http.StatusBadRequest, "nome e uf (2 caracteres) são obrigatórios")
	}
	if err := s.DB.Save(&e).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao atualizar estado")
	}
	s.DB.Preload("Pais").First(&e, "id = ?", e.ID)
	return c.JSON(http.StatusOK, estadoNested(e))
}

func (s *Server) DeleteEstado(c echo.Context) error {
	if err := s.DB.Delete(&Estado{}, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao excluir estado")
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- cidades ----

func (s *Server) ListCidades(c echo.Context) error {
	var cidades []Cidade
	if err := s.DB.Preload("Estado.Pais").Order("nome").Find(&cidades).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "falha ao listar cidades")
	}
	rows := make([]map[string]any, 0, len(cidades))
	for _, city := range cidades {
		rows = append(rows, cidadeFlat(city))
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) GetCidade(c echo.Context) error {
	var city Cidade
	if err := s.DB.Preload("Estado.Pais").First(&city, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "cidade não encontrada")
	}
	return c.JSON(http.StatusOK, cidadeNested(city))
}

func (s *Server) CreateCidade(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	city := Cidade{
		Nome:     getString(payload, "nome"),
		EstadoID: getString(payload, "estadoId"),
		Ativo:    getBool(payload, "ativo", true),
	}
	if city.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if err := s.DB.First(&Estado{}, "id = ?", city.EstadoID).Error; err != nil {
		return fail(c, http.StatusBadRequest, "estadoId inexistente")
	}
	if err := s.DB.Create(&city).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao criar cidade")
	}
	s.DB.Preload("Estado.Pais").First(&city, "id = ?", city.ID)
	return c.JSON(http.StatusCreated, cidadeNested(city))
}

func (s *Server) UpdateCidade(c echo.Context) error {
	var city Cidade
	if err := s.DB.First(&city, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "cidade não encontrada")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	city.Nome = getString(payload, "nome")
	if estadoID := getString(payload, "estadoId"); estadoID != "" {
		city.EstadoID = estadoID
	}
	city.Ativo = getBool(payload, "ativo", city.Ativo)
	if city.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if err := s.DB.Save(&city).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao atualizar cidade")
	}
	s.DB.Preload("Estado.Pais").First(&city, "id = ?", city.ID)
	return c.JSON(http.StatusOK, cidadeNested(city))
}

func (s *Server) DeleteCidade(c echo.Context) error {
	if err := s.DB.Delete(&Cidade{}, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao excluir cidade")
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- clientes / fornecedores / transportadoras ----

func bindPessoa(payload map[string]any, p *Pessoa) {
	p.CidadeID = getString(payload, "cidadeId")
	p.Telefone = getString(payload, "telefone")
	p.Email = getString(payload, "email")
	p.Endereco = getString(payload, "endereco")
	p.Numero = getString(payload, "numero")
	p.Complemento = getString(payload, "complemento")
	p.Bairro = getString(payload, "bairro")
	p.CEP = getString(payload, "cep")
	p.Ativo = getBool(payload, "ativo", true)
}

func (s *Server) cidadeExists(id string) bool {
	if id == "" {
		return false
	}
	return s.DB.First(&Cidade{}, "id = ?", id).Error == nil
}

func (s *Server) ListClientes(c echo.Context) error {
	var clientes []Cliente
	if err := s.DB.Preload("Cidade.Estado.Pais").Order("nome").Find(&clientes).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "falha ao listar clientes")
	}
	rows := make([]map[string]any, 0, len(clientes))
	for _, cl := range clientes {
		rows = append(rows, clienteFlat(cl))
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) GetCliente(c echo.Context) error {
	var cl Cliente
	if err := s.DB.Preload("Cidade.Estado.Pais").First(&cl, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "cliente não encontrado")
	}
	return c.JSON(http.StatusOK, clienteNested(cl))
}

func (s *Server) CreateCliente(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	cl := Cliente{
		Nome: getString(payload, "nome"),
		CPF:  getString(payload, "cpf"),
		RG:   getString(payload, "rg"),
	}
	bindPessoa(payload, &cl.Pessoa)
	if cl.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if !s.cidadeExists(cl.CidadeID) {
		return fail(c, http.StatusBadRequest, "cidadeId inexistente")
	}
	if err := s.DB.Create(&cl).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao criar cliente")
	}
	s.DB.Preload("Cidade.Estado.Pais").First(&cl, "id = ?", cl.ID)
	return c.JSON(http.StatusCreated, clienteNested(cl))
}

func (s *Server) UpdateCliente(c echo.Context) error {
	var cl Cliente
	if err := s.DB.First(&cl, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "cliente não encontrado")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	cl.Nome = getString(payload, "nome")
	cl.CPF = getString(payload, "cpf")
	cl.RG = getString(payload, "rg")
	bindPessoa(payload, &cl.Pessoa)
	if cl.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if !s.cidadeExists(cl.CidadeID) {
		return fail(c, http.StatusBadRequest, "cidadeId inexistente")
	}
	if err := s.DB.Save(&cl).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao atualizar cliente")
	}
	s.DB.Preload("Cidade.Estado.Pais").First(&cl, "id = ?", cl.ID)
	return c.JSON(http.StatusOK, clienteNested(cl))
}

func (s *Server) DeleteCliente(c echo.Context) error {
	if err := s.DB.Delete(&Cliente{}, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao excluir cliente")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListFornecedores(c echo.Context) error {
	var fornecedores []Fornecedor
	if err := s.DB.Preload("Cidade.Estado.Pais").Order("nome").Find(&fornecedores).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "falha ao listar fornecedores")
	}
	rows := make([]map[string]any, 0, len(fornecedores))
	for _, f := range fornecedores {
		rows = append(rows, fornecedorFlat(f))
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) GetFornecedor(c echo.Context) error {
	var f Fornecedor
	if err := s.DB.Preload("Cidade.Estado.Pais").First(&f, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "fornecedor não encontrado")
	}
	return c.JSON(http.StatusOK, fornecedorNested(f))
}

func (s *Server) CreateFornecedor(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	f := Fornecedor{
		Nome:              getString(payload, "nome"),
		NomeFantasia:      getString(payload, "nomeFantasia"),
		CNPJ:              getString(payload, "cnpj"),
		InscricaoEstadual: getString(payload, "inscricaoEstadual"),
	}
	bindPessoa(payload, &f.Pessoa)
	if f.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if !s.cidadeExists(f.CidadeID) {
		return fail(c, http.StatusBadRequest, "cidadeId inexistente")
	}
	if err := s.DB.Create(&f).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao criar fornecedor")
	}
	s.DB.Preload("Cidade.Estado.Pais").First(&f, "id = ?", f.ID)
	return c.JSON(http.StatusCreated, fornecedorNested(f))
}

func (s *Server) UpdateFornecedor(c echo.Context) error {
	var f Fornecedor
	if err := s.DB.First(&f, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "fornecedor não encontrado")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	f.Nome = getString(payload, "nome")
	f.NomeFantasia = getString(payload, "nomeFantasia")
	f.CNPJ = getString(payload, "cnpj")
	f.InscricaoEstadual = getString(payload, "inscricaoEstadual")
	bindPessoa(payload, &f.Pessoa)
	if f.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if !s.cidadeExists(f.CidadeID) {
		return fail(c, http.StatusBadRequest, "cidadeId inexistente")
	}
	if err := s.DB.Save(&f).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao atualizar fornecedor")
	}
	s.DB.Preload("Cidade.Estado.Pais").First(&f, "id = ?", f.ID)
	return c.JSON(http.StatusOK, fornecedorNested(f))
}

func (s *Server) DeleteFornecedor(c echo.Context) error {
	if err := s.DB.Delete(&Fornecedor{}, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao excluir fornecedor")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListTransportadoras(c echo.Context) error {
	var transportadoras []Transportadora
	if err := s.DB.Preload("Cidade.Estado.Pais").Order("nome").Find(&transportadoras).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "falha ao listar transportadoras")
	}
	rows := make([]map[string]any, 0, len(transportadoras))
	for _, tr := range transportadoras {
		rows = append(rows, transportadoraFlat(tr))
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) GetTransportadora(c echo.Context) error {
	var tr Transportadora
	if err := s.DB.Preload("Cidade.Estado.Pais").First(&tr, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "transportadora não encontrada")
	}
	return c.JSON(http.StatusOK, transportadoraNested(tr))
}

func (s *Server) CreateTransportadora(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	tr := Transportadora{
		Nome:              getString(payload, "nome"),
		CNPJ:              getString(payload, "cnpj"),
		InscricaoEstadual: getString(payload, "inscricaoEstadual"),
	}
	bindPessoa(payload, &tr.Pessoa)
	if tr.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if !s.cidadeExists(tr.CidadeID) {
		return fail(c, http.StatusBadRequest, "cidadeId inexistente")
	}
	if err := s.DB.Create(&tr).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao criar transportadora")
	}
	s.DB.Preload("Cidade.Estado.Pais").First(&tr, "id = ?", tr.ID)
	return c.JSON(http.StatusCreated, transportadoraNested(tr))
}

func (s *Server) UpdateTransportadora(c echo.Context) error {
	var tr Transportadora
	if err := s.DB.First(&tr, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusNotFound, "transportadora não encontrada")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "corpo inválido")
	}
	tr.Nome = getString(payload, "nome")
	tr.CNPJ = getString(payload, "cnpj")
	tr.InscricaoEstadual = getString(payload, "inscricaoEstadual")
	bindPessoa(payload, &tr.Pessoa)
	if tr.Nome == "" {
		return fail(c, http.StatusBadRequest, "nome é obrigatório")
	}
	if !s.cidadeExists(tr.CidadeID) {
		return fail(c, http.StatusBadRequest, "cidadeId inexistente")
	}
	if err := s.DB.Save(&tr).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao atualizar transportadora")
	}
	s.DB.Preload("Cidade.Estado.Pais").First(&tr, "id = ?", tr.ID)
	return c.JSON(http.StatusOK, transportadoraNested(tr))
}

func (s *Server) DeleteTransportadora(c echo.Context) error {
	if err := s.DB.Delete(&Transportadora{}, "id = ?", c.Param("id")).Error; err != nil {
		return fail(c, http.StatusConflict, "falha ao excluir transportadora")
	}
	return c.NoContent(http.StatusNoContent)
}
