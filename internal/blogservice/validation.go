package blogservice

import (
	"fmt"

	"github.com/sushihentaime/blogpages/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must not be more than 200 characters long")
}

func validateDescription(v *common.Validator, description string) {
	v.Check(description != "", "description", "must be provided")
}

func validateArticle(v *common.Validator, article string, min int) {
	v.Check(article != "", "article", "must be provided")
	v.Check(v.CheckMinLength(article, min), "article", fmt.Sprintf("must be at least %d characters long", min))
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "comment", "must be provided")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
