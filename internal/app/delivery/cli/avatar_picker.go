package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
)

// fileAvatarPicker asks for an image path on the terminal. An empty
// answer is a cancellation.
type fileAvatarPicker struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewFileAvatarPicker(in io.Reader, out io.Writer) contracts.AvatarPicker {
	return &fileAvatarPicker{
		In:  bufio.NewReader(in),
		Out: out,
	}
}

func (p *fileAvatarPicker) Pick(ctx context.Context) (*requests.AvatarUpload, bool, error) {
	fmt.Fprint(p.Out, "Path to the new avatar image (empty to cancel): ")
	line, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, false, err
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return nil, false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}

	return &requests.AvatarUpload{
		FileName:    file.Name(),
		ContentType: constvars.MIMEImageJPEG,
		Content:     file,
	}, true, nil
}
