// Package printer formata e imprime recibos de venda e relatórios em texto.
// A saída vai para uma impressora térmica via TCP quando configurada; sem
// impressora, o texto é salvo em arquivo (modo simulação).
package printer

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config define a impressora térmica e os diretórios do modo simulação
type Config struct {
	Host        string
	Port        string
	Timeout     time.Duration
	ReceiptsDir string
	ReportsDir  string
}

// ConfigFromEnv monta a configuração a partir das variáveis de ambiente.
// Sem PRINTER_HOST, a impressão opera em modo simulação.
func ConfigFromEnv() Config {
	cfg := Config{
		Host:        os.Getenv("PRINTER_HOST"),
		Port:        os.Getenv("PRINTER_PORT"),
		Timeout:     5 * time.Second,
		ReceiptsDir: "recibos",
		ReportsDir:  "relatorios",
	}
	if cfg.Port == "" {
		cfg.Port = "9100"
	}
	return cfg
}

// Receipt é o retrato plano de uma venda para impressão
type Receipt struct {
	SaleNumber    string
	CustomerName  string
	Items         []ReceiptItem
	Subtotal      float64
	Discount      float64
	Total         float64
	PaymentMethod string
}

// ReceiptItem é uma linha do recibo
type ReceiptItem struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// Result descreve o desfecho de uma impressão
type Result struct {
	Success bool   `json:"sucesso"`
	Message string `json:"mensagem"`
	File    string `json:"arquivo,omitempty"`
}

// Status descreve a impressora configurada
type Status struct {
	Connected bool   `json:"conectada"`
	Type      string `json:"tipo"`
	State     string `json:"status"`
}

// Printer envia texto para a impressora térmica ou para arquivo
type Printer struct {
	cfg Config
	now func() time.Time
}

// New cria um Printer com a configuração informada
func New(cfg Config) *Printer {
	return &Printer{cfg: cfg, now: time.Now}
}

const line = "================================"

// FormatReceipt gera o texto do recibo no layout do cupom
func FormatReceipt(r Receipt, when time.Time) string {
	var b strings.Builder

	customer := "Cliente: Não informado"
	if r.CustomerName != "" {
		customer = "Cliente: " + r.CustomerName
	}

	fmt.Fprintf(&b, "\n%s\n        SISTEMA PDV\n%s\n", line, line)
	fmt.Fprintf(&b, "Data: %s\n", when.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "Venda: %s\n", r.SaleNumber)
	fmt.Fprintf(&b, "%s\n%s\n\nITENS:\n", customer, line)

	for _, item := range r.Items {
		subtotal := item.UnitPrice * float64(item.Quantity)
		fmt.Fprintf(&b, "%s\n", item.ProductName)
		fmt.Fprintf(&b, "%dx R$ %.2f = R$ %.2f\n\n", item.Quantity, item.UnitPrice, subtotal)
	}

	fmt.Fprintf(&b, "%s\nSUBTOTAL: R$ %.2f", line, r.Subtotal)
	if r.Discount > 0 {
		fmt.Fprintf(&b, "\nDESCONTO: R$ %.2f", r.Discount)
	}
	fmt.Fprintf(&b, "\nTOTAL: R$ %.2f\n", r.Total)
	fmt.Fprintf(&b, "PAGAMENTO: %s\n\n", strings.ToUpper(r.PaymentMethod))
	fmt.Fprintf(&b, "%s\n    Obrigado pela preferência!\n%s\n", line, line)

	return b.String()
}

// SalesReport é o retrato plano do relatório de vendas para impressão
type SalesReport struct {
	Period          string
	TotalSales      int
	TotalRevenue    float64
	AverageTicket   float64
	ByPaymentMethod []PaymentMethodLine
	TopProducts     []TopProductLine
}

// PaymentMethodLine agrega vendas por forma de pagamento
type PaymentMethodLine struct {
	PaymentMethod string
	Count         int
	Total         float64
}

// TopProductLine é um produto no ranking de mais vendidos
type TopProductLine struct {
	Name     string
	Quantity int
	Total    float64
}

// FormatSalesReport gera o texto do relatório de vendas
func FormatSalesReport(r SalesReport, when time.Time) string {
	var b strings.Builder

	period := r.Period
	if period == "" {
		period = "Não especificado"
	}

	fmt.Fprintf(&b, "\n%s\n      RELATÓRIO DE VENDAS\n%s\n", line, line)
	fmt.Fprintf(&b, "Data: %s\n", when.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "Período: %s\n%s\n\n", period, line)

	fmt.Fprintf(&b, "RESUMO:\n")
	fmt.Fprintf(&b, "Total de Vendas: %d\n", r.TotalSales)
	fmt.Fprintf(&b, "Faturamento: R$ %.2f\n", r.TotalRevenue)
	fmt.Fprintf(&b, "Ticket Médio: R$ %.2f\n\n", r.AverageTicket)

	fmt.Fprintf(&b, "%s\nVENDAS POR FORMA DE PAGAMENTO:\n", line)
	for _, pm := range r.ByPaymentMethod {
		fmt.Fprintf(&b, "%s: %d vendas - R$ %.2f\n", pm.PaymentMethod, pm.Count, pm.Total)
	}

	fmt.Fprintf(&b, "\n%s\nPRODUTOS MAIS VENDIDOS:\n", line)
	for i, p := range r.TopProducts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   Qtd: %d - R$ %.2f\n\n", p.Quantity, p.Total)
	}

	fmt.Fprintf(&b, "%s\nRelatório gerado pelo Sistema PDV\n%s\n", line, line)

	return b.String()
}

// PrintReceipt imprime o recibo de uma venda. Sem impressora configurada ou
// alcançável, salva em arquivo e reporta o caminho.
func (p *Printer) PrintReceipt(r Receipt) (*Result, error) {
	text := FormatReceipt(r, p.now())

	if err := p.send(text); err == nil {
		return &Result{Success: true, Message: "Recibo impresso com sucesso!"}, nil
	}

	name := fmt.Sprintf("recibo_%s.txt", r.SaleNumber)
	path, err := p.saveToFile(p.cfg.ReceiptsDir, name, text)
	if err != nil {
		return &Result{Success: false, Message: "Erro ao imprimir recibo: " + err.Error()}, err
	}
	return &Result{Success: true, Message: "Recibo salvo em: " + path, File: path}, nil
}

// PrintSalesReport imprime o relatório de vendas, com o mesmo fallback em
// arquivo do recibo
func (p *Printer) PrintSalesReport(r SalesReport) (*Result, error) {
	text := FormatSalesReport(r, p.now())

	if err := p.send(text); err == nil {
		return &Result{Success: true, Message: "Relatório impresso com sucesso!"}, nil
	}

	timestamp := p.now().Format("2006-01-02T15-04-05")
	name := fmt.Sprintf("relatorio_%s.txt", timestamp)
	path, err := p.saveToFile(p.cfg.ReportsDir, name, text)
	if err != nil {
		return &Result{Success: false, Message: "Erro ao imprimir relatório: " + err.Error()}, err
	}
	return &Result{Success: true, Message: "Relatório salvo em: " + path, File: path}, nil
}

// Test envia uma impressão de teste
func (p *Printer) Test() *Result {
	text := "Teste de impressão\nSistema PDV funcionando!\n"
	if err := p.send(text); err != nil {
		return &Result{Success: false, Message: "Impressora não conectada - modo simulação ativo"}
	}
	return &Result{Success: true, Message: "Teste de impressão realizado com sucesso!"}
}

// Status informa se há impressora configurada e alcançável
func (p *Printer) Status() Status {
	if p.cfg.Host == "" {
		return Status{Connected: false, Type: "Simulação", State: "Desconectada"}
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(p.cfg.Host, p.cfg.Port), p.cfg.Timeout)
	if err != nil {
		return Status{Connected: false, Type: "Simulação", State: "Desconectada"}
	}
	conn.Close()
	return Status{Connected: true, Type: "Térmica EPSON", State: "Pronta"}
}

// send escreve o texto cru na impressora via TCP
func (p *Printer) send(text string) error {
	if p.cfg.Host == "" {
		return fmt.Errorf("impressora não configurada")
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(p.cfg.Host, p.cfg.Port), p.cfg.Timeout)
	if err != nil {
		return fmt.Errorf("erro ao conectar na impressora: %w", err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(p.cfg.Timeout)); err != nil {
		return err
	}
	if _, err := conn.Write([]byte(text + "\n\n\n")); err != nil {
		return fmt.Errorf("erro ao enviar para a impressora: %w", err)
	}
	return nil
}

// saveToFile grava o texto no diretório do modo simulação
func (p *Printer) saveToFile(dir, name, text string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
