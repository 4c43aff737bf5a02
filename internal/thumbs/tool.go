package thumbs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"asset-prep/internal/logging"
)

// convertWithTool invokes the external image-conversion tool against the
// first frame of the source container, writing directly to outPath. Success
// requires both a zero exit status and the output file existing afterward.
// The invocation is bounded by the configured timeout so a hung tool cannot
// stall the pipeline.
func (d *Deriver) convertWithTool(ctx context.Context, srcPath, outPath string) error {
	toolPath, err := exec.LookPath(d.tool)
	if err != nil {
		return fmt.Errorf("%s not found: %w", d.tool, err)
	}
	logging.Debug("using conversion tool: %s", toolPath)

	tctx, cancel := context.WithTimeout(ctx, d.toolTimeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, d.tool,
		srcPath+"[0]",
		"-resize", fmt.Sprintf("%dx%d", d.maxWidth, d.maxHeight),
		"-quality", strconv.Itoa(d.quality),
		outPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if tctx.Err() != nil {
			return fmt.Errorf("%s timed out after %s", d.tool, d.toolTimeout)
		}
		return fmt.Errorf("%s failed: %v, stderr: %s", d.tool, err, stderr.String())
	}

	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("%s exited cleanly but produced no output: %w", d.tool, err)
	}
	return nil
}
