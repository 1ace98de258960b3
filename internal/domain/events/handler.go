package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"days-since/internal/middleware"
	"days-since/internal/platform/logger"
	"days-since/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const commandAutocomplete = "autocomplete"

type handlerDeps struct {
	svc     *Service
	log     logger.Logger
	metrics *metrics.Commands
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, m *metrics.Commands) {
	if log == nil {
		log = logger.Nop()
	}
	d := handlerDeps{svc: svc, log: log, metrics: m}

	r.Route("/commands", func(cr chi.Router) {
		cr.Get("/", listCommandsHandler())
		cr.Get("/autocomplete", autocompleteHandler(d))

		cr.Post("/"+CommandCreate, createHandler(d))
		cr.Post("/"+CommandUpdate, updateHandler(d))
		cr.Post("/"+CommandDaysSince, daysSinceHandler(d))
		cr.Post("/"+CommandReset, resetHandler(d))
		cr.Post("/"+CommandRemove, removeHandler(d))
		cr.Post("/"+CommandList, listHandler(d))
	})
}

// commandRequest son los argumentos tipados que manda el dispatcher.
type commandRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// replyResponse es el texto a mostrar y su visibilidad.
type replyResponse struct {
	Text         string     `json:"text"`
	Visibility   Visibility `json:"visibility" enums:"public,requester_only"`
	InvocationID string     `json:"invocation_id"`
}

type autocompleteResponse struct {
	Choices []string `json:"choices"`
}

type argumentResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Autocomplete bool   `json:"autocomplete"`
}

type commandResponse struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Arguments   []argumentResponse `json:"arguments"`
}

// listCommandsHandler godoc
// @Summary Registro de comandos
// @Description Devuelve los seis comandos con su esquema de argumentos, para que el dispatcher los registre en la plataforma de chat.
// @Tags commands
// @Produce json
// @Success 200 {array} commandResponse
// @Router /commands [get]
func listCommandsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmds := Commands()
		out := make([]commandResponse, 0, len(cmds))
		for _, c := range cmds {
			args := make([]argumentResponse, 0, len(c.Arguments))
			for _, a := range c.Arguments {
				args = append(args, argumentResponse(a))
			}
			out = append(out, commandResponse{Name: c.Name, Description: c.Description, Arguments: args})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createHandler godoc
// @Summary Crear evento
// @Description Crea el evento `name` en la comunidad de `X-Community-ID` con `since` = ahora. Falla si ya existe.
// @Tags commands
// @Accept json
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Param payload body commandRequest true "name y text"
// @Success 200 {object} replyResponse
// @Failure 400 {object} replyResponse "sin comunidad / input inválido"
// @Failure 409 {object} replyResponse "el evento ya existe"
// @Failure 500 {object} replyResponse "falla del store"
// @Router /commands/create [post]
func createHandler(d handlerDeps) http.HandlerFunc {
	return d.command(CommandCreate, true, func(ctx context.Context, community string, req commandRequest) (Reply, error) {
		return d.svc.Create(ctx, community, req.Name, req.Text)
	})
}

// updateHandler godoc
// @Summary Actualizar texto de un evento
// @Description Reemplaza la descripción y conserva `since`.
// @Tags commands
// @Accept json
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Param payload body commandRequest true "name y text"
// @Success 200 {object} replyResponse
// @Failure 400 {object} replyResponse
// @Failure 404 {object} replyResponse "el evento no existe"
// @Failure 500 {object} replyResponse
// @Router /commands/update [post]
func updateHandler(d handlerDeps) http.HandlerFunc {
	return d.command(CommandUpdate, true, func(ctx context.Context, community string, req commandRequest) (Reply, error) {
		return d.svc.Update(ctx, community, req.Name, req.Text)
	})
}

// daysSinceHandler godoc
// @Summary Días desde el evento
// @Description "It has been N day(s) since <description>."
// @Tags commands
// @Accept json
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Param payload body commandRequest true "name"
// @Success 200 {object} replyResponse
// @Failure 400 {object} replyResponse
// @Failure 404 {object} replyResponse
// @Failure 500 {object} replyResponse
// @Router /commands/days_since [post]
func daysSinceHandler(d handlerDeps) http.HandlerFunc {
	return d.command(CommandDaysSince, true, func(ctx context.Context, community string, req commandRequest) (Reply, error) {
		return d.svc.DaysSince(ctx, community, req.Name)
	})
}

// resetHandler godoc
// @Summary Resetear contador
// @Description Lleva `since` a ahora conservando la descripción.
// @Tags commands
// @Accept json
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Param payload body commandRequest true "name"
// @Success 200 {object} replyResponse
// @Failure 400 {object} replyResponse
// @Failure 404 {object} replyResponse
// @Failure 500 {object} replyResponse
// @Router /commands/reset [post]
func resetHandler(d handlerDeps) http.HandlerFunc {
	return d.command(CommandReset, true, func(ctx context.Context, community string, req commandRequest) (Reply, error) {
		return d.svc.Reset(ctx, community, req.Name)
	})
}

// removeHandler godoc
// @Summary Borrar evento
// @Tags commands
// @Accept json
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Param payload body commandRequest true "name"
// @Success 200 {object} replyResponse
// @Failure 400 {object} replyResponse
// @Failure 404 {object} replyResponse
// @Failure 500 {object} replyResponse
// @Router /commands/remove [post]
func removeHandler(d handlerDeps) http.HandlerFunc {
	return d.command(CommandRemove, true, func(ctx context.Context, community string, req commandRequest) (Reply, error) {
		return d.svc.Remove(ctx, community, req.Name)
	})
}

// listHandler godoc
// @Summary Listar eventos de la comunidad
// @Description Una línea "name: description" por evento, o "No events found".
// @Tags commands
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Success 200 {object} replyResponse
// @Failure 400 {object} replyResponse
// @Failure 500 {object} replyResponse
// @Router /commands/list [post]
func listHandler(d handlerDeps) http.HandlerFunc {
	return d.command(CommandList, false, func(ctx context.Context, community string, _ commandRequest) (Reply, error) {
		return d.svc.List(ctx, community)
	})
}

// autocompleteHandler godoc
// @Summary Sugerencias de nombre
// @Description Nombres de la comunidad que contienen `partial`. Nunca falla: ante error devuelve lista vacía.
// @Tags commands
// @Produce json
// @Param X-Community-ID header string true "ID de la comunidad (guild)"
// @Param Authorization header string false "Bearer token del dispatcher"
// @Param partial query string false "Texto parcial (substring, case-sensitive)"
// @Success 200 {object} autocompleteResponse
// @Router /commands/autocomplete [get]
func autocompleteHandler(d handlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		community := middleware.GetCommunityID(r.Context())

		choices := d.svc.AutocompleteName(r.Context(), community, r.URL.Query().Get("partial"))

		d.metrics.Observe(commandAutocomplete, Outcome(nil), time.Since(start))
		writeJSON(w, http.StatusOK, autocompleteResponse{Choices: choices})
	}
}

// command arma el handler común: decode, ejecución, log, métricas y respuesta.
func (d handlerDeps) command(
	name string,
	readBody bool,
	run func(ctx context.Context, community string, req commandRequest) (Reply, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		community := middleware.GetCommunityID(ctx)
		invocation := middleware.GetInvocationID(ctx)

		var req commandRequest
		if readBody {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				d.respond(w, invocation, ErrorReply(ErrInvalidInput), http.StatusBadRequest)
				return
			}
		}

		reply, err := run(ctx, community, req)

		outcome := Outcome(err)
		fields := map[string]any{
			"command":       name,
			"community_id":  community,
			"name":          req.Name,
			"invocation_id": invocation,
			"outcome":       outcome,
			"duration_ms":   time.Since(start).Milliseconds(),
		}
		if claims, ok := middleware.GetClaims(ctx); ok {
			fields["subject"] = claims.Subject
		}
		d.metrics.Observe(name, outcome, time.Since(start))

		if err != nil {
			if errors.Is(err, ErrStoreFailure) {
				fields["error"] = err.Error()
				d.log.Error("command failed", fields)
			} else {
				d.log.Info("command refused", fields)
			}
			d.respond(w, invocation, ErrorReply(err), statusFor(err))
			return
		}

		d.log.Info("command handled", fields)
		d.respond(w, invocation, reply, http.StatusOK)
	}
}

func (d handlerDeps) respond(w http.ResponseWriter, invocation string, reply Reply, status int) {
	writeJSON(w, status, replyResponse{
		Text:         reply.Text,
		Visibility:   reply.Visibility,
		InvocationID: invocation,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidContext), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
