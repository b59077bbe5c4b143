package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyTo maps a usecase view onto a response DTO by field name.
func copyTo[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return &dst
}

func copyAll[T any, S any](src []S) []*T {
	out := make([]*T, len(src))
	for i, s := range src {
		out[i] = copyTo[T](s)
	}
	return out
}
