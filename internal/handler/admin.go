package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Andr3sPonc3M/AskWorld/internal/store"
	"github.com/Andr3sPonc3M/AskWorld/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// AdminHandler exposes administrator-only views over the user table.
type AdminHandler struct {
	Store *store.UserStore
}

func NewAdminHandler(s *store.UserStore) *AdminHandler {
	return &AdminHandler{Store: s}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Store.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		list = append(list, gin.H{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"role":       u.Role,
			"active":     u.Active,
			"created_at": u.CreatedAt,
		})
	}

	util.Success(c, http.StatusOK, util.Response{
		"count": len(list),
		"users": list,
	})
}

// ExportUsersXLSX handles GET /api/admin/users/export.
func (h *AdminHandler) ExportUsersXLSX(c *gin.Context) {
	users, err := h.Store.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	f := excelize.NewFile()
	sheetName := "Users"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Name", "Email", "Role", "Active", "Created"}
	for i, head := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, u := range users {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), u.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), u.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), u.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), u.Role.String())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), u.Active)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), u.CreatedAt.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 8)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"users_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "export failed")
	}
}
