package identity

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Method indica por qual caminho a identidade de um pedido foi resolvida.
// A classificação é exposta para que a camada de diagnóstico consiga medir
// a qualidade dos dados de cadastro (% resolvido por email, por código etc).
type Method string

const (
	MethodPrecomputed Method = "precomputed"
	MethodEmail       Method = "email"
	MethodCustomerID  Method = "customer_id"
	MethodGeneric     Method = "generic_fallback"
	MethodSynthesized Method = "synthesized"
)

// Resolution é o resultado completo da resolução de identidade de um pedido.
type Resolution struct {
	Key    string
	Method Method
}

// Prefixos de chaves sintéticas geradas por nós ou pelas origens. Uma chave
// com um desses prefixos não identifica um cliente real e só é usada como
// último recurso.
var genericPrefixes = []string{"unknown_", "wake_customer_"}

// accessor tenta extrair um campo lógico de um pedido. Retorna string vazia
// quando o campo não existe naquele alias.
type accessor func(o domain.Order) string

// As origens expõem os dados de cliente sob nomes diferentes conforme a
// versão da API e o nível de enriquecimento. Cada campo lógico tem uma lista
// ordenada de aliases, incluindo buscas dentro do payload bruto.
var emailAccessors = []accessor{
	func(o domain.Order) string { return o.CustomerEmail },
	rawString("email"),
	rawString("customer_email"),
	rawString("cliente_email"),
	rawNested("cliente", "email"),
	rawNested("contato", "email"),
}

var customerIDAccessors = []accessor{
	rawString("customer_id"),
	rawString("cliente_id"),
	rawString("codigo_cliente"),
	rawNested("cliente", "id"),
	rawNested("contato", "id"),
	rawNested("contato", "codigo"),
}

var nameAccessors = []accessor{
	func(o domain.Order) string { return o.CustomerName },
	rawString("customer_name"),
	rawString("nome"),
	rawString("cliente_nome"),
	rawNested("cliente", "nome"),
	rawNested("contato", "nome"),
}

var phoneAccessors = []accessor{
	func(o domain.Order) string { return o.CustomerPhone },
	rawString("phone"),
	rawString("telefone"),
	rawString("celular"),
	rawNested("cliente", "telefone"),
	rawNested("contato", "telefone"),
}

// Resolve deriva a identidade canônica de um pedido. É uma função total:
// nunca falha e sempre retorna uma chave não vazia, degradando até uma chave
// sintética por pedido quando não há nenhum sinal de identificação.
//
// Prioridade: chave pré-computada não genérica → email com "@" → código de
// cliente → chave pré-computada mesmo genérica → chave sintetizada.
func Resolve(o domain.Order) Resolution {
	if o.CustomerKey != "" && !IsGenericKey(o.CustomerKey) {
		return Resolution{Key: o.CustomerKey, Method: MethodPrecomputed}
	}

	if email := Email(o); email != "" {
		return Resolution{Key: email, Method: MethodEmail}
	}

	if id := customerID(o); id != "" {
		return Resolution{Key: id, Method: MethodCustomerID}
	}

	if o.CustomerKey != "" {
		return Resolution{Key: o.CustomerKey, Method: MethodGeneric}
	}

	return Resolution{Key: synthesize(o), Method: MethodSynthesized}
}

// Key é o atalho usado pelos consumidores que só precisam da chave.
func Key(o domain.Order) string {
	return Resolve(o).Key
}

// IsGenericKey informa se a chave é um valor sintético que não identifica
// um cliente real.
func IsGenericKey(key string) bool {
	for _, prefix := range genericPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// Email retorna o email do cliente em minúsculas, ou vazio quando nenhum
// alias carrega um valor com "@". Emails sem "@" não são confiáveis e são
// descartados.
func Email(o domain.Order) string {
	for _, get := range emailAccessors {
		if v := strings.TrimSpace(get(o)); strings.Contains(v, "@") {
			return strings.ToLower(v)
		}
	}
	return ""
}

// DisplayName retorna o melhor nome de exibição disponível, degradando para
// o literal "Cliente" quando nenhum alias carrega valor.
func DisplayName(o domain.Order) string {
	for _, get := range nameAccessors {
		if v := strings.TrimSpace(get(o)); v != "" {
			return v
		}
	}
	return "Cliente"
}

// Phone retorna o telefone do cliente ou vazio.
func Phone(o domain.Order) string {
	for _, get := range phoneAccessors {
		if v := strings.TrimSpace(get(o)); v != "" {
			return v
		}
	}
	return ""
}

// OrderDate extrai e interpreta a data do pedido. Aceita dd/mm/yyyy e os
// formatos ISO usados pelas origens. Quando nada é interpretável retorna o
// instante atual e ok=false, para que o chamador consiga medir o problema
// de qualidade sem interromper a agregação.
func OrderDate(o domain.Order) (time.Time, bool) {
	candidates := []string{o.Date}
	for _, key := range []string{"data", "date", "created_at"} {
		candidates = append(candidates, rawString(key)(o))
	}

	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if t, ok := parseLooseDate(raw); ok {
			return t, true
		}
	}

	return time.Now(), false
}

// parseLooseDate decide o formato pela presença de "/" ou "-" em vez de
// assumir um deles, já que as duas origens divergem.
func parseLooseDate(raw string) (time.Time, bool) {
	layouts := []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04:05"}
	if strings.Contains(raw, "/") {
		layouts = []string{"02/01/2006", "02/01/2006 15:04:05"}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func customerID(o domain.Order) string {
	for _, get := range customerIDAccessors {
		if v := strings.TrimSpace(get(o)); v != "" {
			return v
		}
	}
	return ""
}

func synthesize(o domain.Order) string {
	if o.ID != "" {
		return "unknown_" + o.ID
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		suffix = strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return "unknown_" + suffix
}

func rawString(key string) accessor {
	return func(o domain.Order) string {
		return stringify(o.Raw[key])
	}
}

func rawNested(parent, key string) accessor {
	return func(o domain.Order) string {
		nested, ok := o.Raw[parent].(map[string]any)
		if !ok {
			return ""
		}
		return stringify(nested[key])
	}
}

// stringify aceita os tipos que o decode de JSON produz para campos de
// identificação: strings e números (ids numéricos chegam como float64).
func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return ""
	}
}
