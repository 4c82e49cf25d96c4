package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

func productIDFrom(c *gin.Context) catalog.ID {
	return catalog.ID(strings.TrimSpace(c.PostForm("product_id")))
}
