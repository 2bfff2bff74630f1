package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// pathID reads the ":id" path parameter.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.Validation(httperr.FieldError{Field: "id", Message: "identificador inválido"})
	}
	return uint(id), nil
}

type page struct {
	Offset int
	Limit  int
}

// pageParams reads offset (or its alias skip) and limit.
func pageParams(c *gin.Context) (page, error) {
	var rep validators.Report
	p := page{Limit: validators.DefaultPageLimit}

	offsetRaw := c.Query("offset")
	if offsetRaw == "" {
		offsetRaw = c.Query("skip")
	}
	if offsetRaw != "" {
		n, err := strconv.Atoi(offsetRaw)
		if err != nil {
			rep.Add("offset", "deve ser um número inteiro")
		}
		p.Offset = n
	}

	if limitRaw := c.Query("limit"); limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil {
			rep.Add("limit", "deve ser um número inteiro")
		}
		p.Limit = n
	}

	if rep.OK() {
		validators.Page(&rep, p.Offset, p.Limit)
	}
	return p, rep.Err()
}

// pageNumberParams reads 1-based page and limit.
func pageNumberParams(c *gin.Context) (number, limit int, err error) {
	var rep validators.Report
	number, limit = 1, validators.DefaultPageLimit

	if raw := c.Query("page"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			rep.Add("page", "deve ser um número inteiro")
		}
		number = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			rep.Add("limit", "deve ser um número inteiro")
		}
		limit = n
	}

	if rep.OK() {
		validators.PageNumber(&rep, number, limit)
	}
	return number, limit, rep.Err()
}

func queryUint(rep *validators.Report, c *gin.Context, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		rep.Add(name, "deve ser um número inteiro positivo")
		return nil
	}
	v := uint(n)
	return &v
}

func queryDate(rep *validators.Report, c *gin.Context, name string) *models.Date {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		rep.Add(name, err.Error())
		return nil
	}
	return &d
}

// bindJSON binds the body and converts failures to a validation error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return false
	}
	return true
}
