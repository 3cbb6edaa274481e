package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/dto"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const recordTimeout = 2 * time.Second

type CalcRouter struct {
	e          *echo.Echo
	calculator *calc.Calculator
	recorder   storage.Storer
}

type CalcRouterOption func(*CalcRouter)

// WithRecorder stores an EvaluationRecord for every evaluation served.
func WithRecorder(s storage.Storer) CalcRouterOption {
	return func(r *CalcRouter) {
		r.recorder = s
	}
}

func NewCalcRouter(e *echo.Echo, calculator *calc.Calculator, opts ...CalcRouterOption) *CalcRouter {
	r := &CalcRouter{
		e:          e,
		calculator: calculator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CalcRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/eval", r.evalPostHandler)
	v1.GET("/eval", r.evalGetHandler)
	v1.GET("/operators", r.operatorsHandler)
}

// evalPostHandler godoc
// @Summary Evaluate an expression
// @Description Lexes, reduces to postfix and evaluates one line of integer arithmetic.
// @Tags eval
// @Accept json
// @Produce json
// @Param request body dto.EvalRequest true "Expression to evaluate"
// @Success 200 {object} dto.EvalResponse
// @Failure 400 {object} dto.ErrorResponse "Validation, lex or parse error"
// @Failure 422 {object} dto.ErrorResponse "Evaluation error"
// @Router /v1/eval [post]
func (r *CalcRouter) evalPostHandler(c echo.Context) error {
	var req dto.EvalRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Expression == nil {
		return apperr.NewValidation("expression is required")
	}
	return r.evaluate(c, *req.Expression, req.Trace)
}

// evalGetHandler godoc
// @Summary Evaluate an expression
// @Description Same as POST /v1/eval with the expression passed as a query parameter.
// @Tags eval
// @Produce json
// @Param expr query string true "Expression, URL encoded" example(2%2B3*4)
// @Param trace query bool false "Include tokens and postfix program"
// @Success 200 {object} dto.EvalResponse
// @Failure 400 {object} dto.ErrorResponse "Validation, lex or parse error"
// @Failure 422 {object} dto.ErrorResponse "Evaluation error"
// @Router /v1/eval [get]
func (r *CalcRouter) evalGetHandler(c echo.Context) error {
	params := c.QueryParams()
	if _, ok := params["expr"]; !ok {
		return apperr.NewValidation("expr query parameter is required")
	}

	trace := false
	if raw := c.QueryParam("trace"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return apperr.NewValidationWrap("trace must be a boolean", err)
		}
		trace = v
	}

	return r.evaluate(c, c.QueryParam("expr"), trace)
}

// operatorsHandler godoc
// @Summary List operators
// @Description Returns the operator table (precedence and associativity) and the error kinds an evaluation can fail with.
// @Tags eval
// @Produce json
// @Success 200 {object} dto.OperatorsResponse
// @Router /v1/operators [get]
func (r *CalcRouter) operatorsHandler(c echo.Context) error {
	ops := make([]dto.OperatorInfo, 0, len(operator.All))
	for _, op := range operator.All {
		ops = append(ops, dto.OperatorInfo{
			Symbol:           op.String(),
			Name:             op.Name(),
			Precedence:       op.Precedence(),
			RightAssociative: op.IsRightAssociative(),
		})
	}
	return c.JSON(http.StatusOK, dto.OperatorsResponse{
		Operators:  ops,
		ErrorKinds: apperr.KindNames(),
	})
}

func (r *CalcRouter) evaluate(c echo.Context, expr string, trace bool) error {
	if len(expr) > dto.MaxExpressionLength {
		return apperr.NewValidation(fmt.Sprintf("expression longer than %d bytes", dto.MaxExpressionLength))
	}

	tr, err := r.calculator.Trace(expr)
	id := r.record(c.Request().Context(), tr, err)
	if err != nil {
		slog.Debug("evaluation failed", "expression", expr, "kind", apperr.KindOf(err), "stage", apperr.StageOf(err))
		return err
	}

	res := dto.EvalResponse{
		ID:         id,
		Expression: expr,
		Value:      tr.Value,
	}
	if trace {
		res.Postfix = tr.Postfix
		res.Tokens = tr.Tokens
		res.Program = tr.Program
	}
	return c.JSON(http.StatusOK, res)
}

// record is best effort: a storage failure never fails the request.
func (r *CalcRouter) record(ctx context.Context, tr *calc.Trace, evalErr error) *uuid.UUID {
	if r.recorder == nil {
		return nil
	}

	rec := domain.NewEvaluationRecord(domain.SourceAPI, tr.Input, tr.Postfix, tr.Value, evalErr)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	id, err := r.recorder.Save(ctx, rec)
	if err != nil {
		slog.Error("Failed to record evaluation", "expression", tr.Input, "error", err)
		return nil
	}
	return &id
}
