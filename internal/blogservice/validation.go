package blogservice

import (
	"github.com/sushihentaime/blogist/internal/common"
)

func validateInput(v *common.Validator, input *BlogInput) {
	v.CheckPresent(input.Title, "title")
	v.CheckPresent(input.Body, "body")
}
