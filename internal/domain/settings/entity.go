package settings

import "time"

// ValueType indica como o valor textual da configuração deve ser interpretado
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeBoolean ValueType = "boolean"
	TypeNumber  ValueType = "number"
	TypeJSON    ValueType = "json"
)

// Setting é uma entrada do repositório chave/valor de configurações
type Setting struct {
	Key         string    `json:"chave"`
	Value       string    `json:"valor"`
	Type        ValueType `json:"tipo"`
	Description string    `json:"descricao"`
	Category    string    `json:"categoria"`
	UpdatedAt   time.Time `json:"data_atualizacao"`
}

// Defaults retorna as configurações padrão do sistema
func Defaults() []Setting {
	return []Setting{
		{Key: "empresa_nome", Value: "Minha Empresa", Type: TypeString, Description: "Nome da empresa", Category: "empresa"},
		{Key: "empresa_cnpj", Value: "", Type: TypeString, Description: "CNPJ da empresa", Category: "empresa"},
		{Key: "empresa_endereco", Value: "", Type: TypeString, Description: "Endereço da empresa", Category: "empresa"},
		{Key: "empresa_telefone", Value: "", Type: TypeString, Description: "Telefone da empresa", Category: "empresa"},
		{Key: "pdv_impressora_padrao", Value: "", Type: TypeString, Description: "Impressora padrão do PDV", Category: "pdv"},
		{Key: "pdv_imprimir_automatico", Value: "true", Type: TypeBoolean, Description: "Imprimir recibo automaticamente", Category: "pdv"},
		{Key: "estoque_alerta_minimo", Value: "true", Type: TypeBoolean, Description: "Alertar quando estoque baixo", Category: "estoque"},
		{Key: "sistema_tema", Value: "claro", Type: TypeString, Description: "Tema do sistema", Category: "interface"},
		{Key: "sistema_idioma", Value: "pt-BR", Type: TypeString, Description: "Idioma do sistema", Category: "interface"},
	}
}
