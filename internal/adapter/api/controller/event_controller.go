package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/pkg/logger"
	"github.com/sistemapdv/sistema-pdv/pkg/notifier"
)

// EventController entrega os avisos de dados alterados via Server-Sent Events
type EventController struct {
	hub    *notifier.Hub
	logger logger.Logger
}

// NewEventController cria uma nova instância de EventController
func NewEventController(hub *notifier.Hub, logger logger.Logger) *EventController {
	return &EventController{
		hub:    hub,
		logger: logger,
	}
}

// Stream mantém a conexão aberta e envia um evento por tópico publicado.
// O cliente recarrega os dados do tópico recebido; eventos perdidos não são
// reenviados.
// @Summary Fluxo de eventos
// @Description Conexão SSE com um evento por tópico alterado (produtos, vendas, financeiro)
// @Tags eventos
// @Produce text/event-stream
// @Success 200 {string} string "stream"
// @Router /eventos [get]
func (c *EventController) Stream(ctx *gin.Context) {
	flusher, ok := ctx.Writer.(http.Flusher)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"erro": "streaming não suportado"})
		return
	}

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	topics, cancel := c.hub.Subscribe()
	defer cancel()

	// Primeiro evento confirma a conexão antes de qualquer publicação
	fmt.Fprintf(ctx.Writer, "event: conectado\ndata: ok\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Request.Context().Done():
			return
		case topic, open := <-topics:
			if !open {
				return
			}
			fmt.Fprintf(ctx.Writer, "event: %s\ndata: atualizado\n\n", topic)
			flusher.Flush()
		}
	}
}
