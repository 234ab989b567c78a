package verify

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/ajroetker/go-lanes/hwy"
)

// Image is one loaded build of the vector library, reachable only through
// the narrow (owner, name) invocation boundary.
type Image interface {
	// Info returns the image's dispatch state.
	Info(ctx context.Context) (hwy.RuntimeInfo, error)
	// List returns the samples the image exposes.
	List(ctx context.Context) ([]SampleID, error)
	// Invoke runs one sample in the image.
	Invoke(ctx context.Context, id SampleID) (Value, error)
	Close() error
}

// LocalImage is the build linked into the current process: samples run
// the ordinary way, against this process's dispatch table.
type LocalImage struct {
	reg *Registry
}

// NewLocalImage returns an image backed by reg.
func NewLocalImage(reg *Registry) *LocalImage {
	return &LocalImage{reg: reg}
}

func (l *LocalImage) Info(ctx context.Context) (hwy.RuntimeInfo, error) {
	return hwy.Info(), ctx.Err()
}

func (l *LocalImage) List(ctx context.Context) ([]SampleID, error) {
	return l.reg.List(), ctx.Err()
}

func (l *LocalImage) Invoke(ctx context.Context, id SampleID) (Value, error) {
	if err := ctx.Err(); err != nil {
		return Value{}, err
	}
	return l.reg.Invoke(id)
}

func (l *LocalImage) Close() error { return nil }

// ProcessImage is a separately built image running as a child process.
// The child has its own runtime, globals and capability cache, so nothing
// is shared with the verifying process; types of the same name in both are
// never unified because values cross only as Value.
type ProcessImage struct {
	path   string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
	logger *slog.Logger

	mu     sync.Mutex
	closed bool

	closeOnce sync.Once
	closeErr  error
}

// StartProcessImage starts the image binary at path. The process lives
// until Close.
func StartProcessImage(path string, logger *slog.Logger) (*ProcessImage, error) {
	return StartImageCommand(exec.Command(path), logger)
}

// StartImageCommand starts cmd as an image. cmd must not have been
// started and must leave Stdin, Stdout and Stderr unset.
func StartImageCommand(cmd *exec.Cmd, logger *slog.Logger) (*ProcessImage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	path := cmd.Path
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("verify: image %s: %w", path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("verify: image %s: %w", path, err)
	}
	cmd.Stderr = &logWriter{logger: logger.With("image", path)}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("verify: start image %s: %w", path, err)
	}
	logger.Debug("image started", "path", path, "pid", cmd.Process.Pid)
	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &ProcessImage{
		path:   path,
		cmd:    cmd,
		stdin:  stdin,
		stdout: sc,
		logger: logger,
	}, nil
}

// Path returns the image binary's path.
func (p *ProcessImage) Path() string { return p.path }

// call sends one request and reads its response. Requests are serialized;
// the protocol answers strictly in order.
func (p *ProcessImage) call(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return Response{}, ErrImageClosed
	}

	line, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}
	if _, err := p.stdin.Write(append(line, '\n')); err != nil {
		return Response{}, fmt.Errorf("verify: image %s: write: %w", p.path, err)
	}

	type result struct {
		resp Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		if !p.stdout.Scan() {
			err := p.stdout.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			done <- result{err: fmt.Errorf("verify: image %s: read: %w", p.path, err)}
			return
		}
		var resp Response
		if err := json.Unmarshal(p.stdout.Bytes(), &resp); err != nil {
			done <- result{err: fmt.Errorf("verify: image %s: decode: %w", p.path, err)}
			return
		}
		done <- result{resp: resp}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return Response{}, r.err
		}
		if r.resp.Error != nil {
			return Response{}, r.resp.Error
		}
		return r.resp, nil
	case <-ctx.Done():
		// The reader goroutine may still own stdout; the image is unusable.
		p.closed = true
		_ = p.cmd.Process.Kill()
		return Response{}, ctx.Err()
	}
}

func (p *ProcessImage) Info(ctx context.Context) (hwy.RuntimeInfo, error) {
	resp, err := p.call(ctx, Request{Op: OpInfo})
	if err != nil {
		return hwy.RuntimeInfo{}, err
	}
	if resp.Info == nil {
		return hwy.RuntimeInfo{}, fmt.Errorf("verify: image %s: info response without info", p.path)
	}
	return *resp.Info, nil
}

func (p *ProcessImage) List(ctx context.Context) ([]SampleID, error) {
	resp, err := p.call(ctx, Request{Op: OpList})
	if err != nil {
		return nil, err
	}
	return resp.Samples, nil
}

func (p *ProcessImage) Invoke(ctx context.Context, id SampleID) (Value, error) {
	resp, err := p.call(ctx, Request{Op: OpInvoke, Owner: id.Owner, Name: id.Name})
	if err != nil {
		return Value{}, err
	}
	if resp.Value == nil {
		return Value{}, fmt.Errorf("verify: image %s: invoke %s: response without value", p.path, id)
	}
	return *resp.Value, nil
}

// Close ends the image process by closing its stdin and waits for it.
func (p *ProcessImage) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		killed := p.closed
		p.closed = true
		p.mu.Unlock()

		_ = p.stdin.Close()
		err := p.cmd.Wait()
		if killed {
			// Killed after a cancelled call; the exit status says nothing useful.
			return
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			p.closeErr = fmt.Errorf("verify: image %s exited: %w", p.path, err)
			return
		}
		p.closeErr = err
		p.logger.Debug("image stopped", "path", p.path)
	})
	return p.closeErr
}

// logWriter forwards an image's stderr lines to the logger.
type logWriter struct {
	logger *slog.Logger
	buf    []byte
}

func (w *logWriter) Write(b []byte) (int, error) {
	w.buf = append(w.buf, b...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logger.Debug(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(b), nil
}
