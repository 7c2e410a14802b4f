package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/catalog"
)

type CatalogHandler struct {
	listBranches    *ucCatalog.ListBranches
	listDepartments *ucCatalog.ListDepartments
	listDoctors     *ucCatalog.ListDoctors
}

func NewCatalogHandler(
	listBranches *ucCatalog.ListBranches,
	listDepartments *ucCatalog.ListDepartments,
	listDoctors *ucCatalog.ListDoctors,
) *CatalogHandler {
	return &CatalogHandler{
		listBranches:    listBranches,
		listDepartments: listDepartments,
		listDoctors:     listDoctors,
	}
}

func (h *CatalogHandler) ListBranches(c *gin.Context) {
	branches, err := h.listBranches.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, branches)
}

func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	deps, err := h.listDepartments.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, deps)
}

func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	docs, err := h.listDoctors.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, dto.FromDoctors(docs))
}
