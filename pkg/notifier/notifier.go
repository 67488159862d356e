// Package notifier distribui avisos de "dados alterados" para os clientes
// conectados. O aviso carrega apenas o tópico; quem recebe decide o que
// recarregar.
package notifier

import "sync"

// Hub faz fan-out de tópicos publicados para todos os assinantes. Publicar
// nunca bloqueia: assinante com canal cheio perde o aviso, e o cliente se
// ressincroniza na próxima consulta.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan string]struct{}
}

// NewHub cria um Hub sem assinantes
func NewHub() *Hub {
	return &Hub{subs: make(map[chan string]struct{})}
}

// Subscribe registra um novo assinante e retorna o canal de tópicos e a
// função de cancelamento. Cancelar fecha o canal.
func (h *Hub) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 8)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish envia o tópico a todos os assinantes sem bloquear
func (h *Hub) Publish(topic string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- topic:
		default:
		}
	}
}

// Subscribers retorna o número de assinantes conectados
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
