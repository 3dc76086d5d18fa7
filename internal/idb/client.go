// Package idb drives iOS simulators through the idb command line tool.
// It implements the execution backend: one operation per command type,
// taking the mapper's coerced parameters and shelling out to idb.
package idb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/oklog/ulid/v2"

	"github.com/joss/simpilot/internal/command"
	"github.com/joss/simpilot/internal/config"
	"github.com/joss/simpilot/internal/exec"
	"github.com/joss/simpilot/internal/logging"
)

// Target is one simulator known to idb.
type Target struct {
	UDID      string `json:"udid"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Type      string `json:"type"`
	OSVersion string `json:"os_version"`
}

// App is one installed application.
type App struct {
	BundleID     string `json:"bundle_id"`
	Name         string `json:"name"`
	InstallType  string `json:"install_type"`
	ProcessState string `json:"process_state"`
}

// Session describes an active simulator session.
type Session struct {
	ID   string `json:"sessionId"`
	UDID string `json:"udid"`
	Name string `json:"name"`
}

// Client executes device commands against idb. Safe for concurrent use;
// session state is guarded by a mutex.
type Client struct {
	bin    string
	runner exec.Runner
	log    *logging.Logger

	mu        sync.Mutex
	session   *Session
	recording *osexec.Cmd
	recPath   string
}

// NewClient creates a client over the configured idb binary.
func NewClient(runner exec.Runner) *Client {
	return &Client{
		bin:    config.Env().IDBPath,
		runner: runner,
		log:    logging.New("idb"),
	}
}

// Execute dispatches one device operation. Unknown types report a
// command_not_found failure so callers see a classified error.
func (c *Client) Execute(ctx context.Context, t command.Type, params map[string]any) (any, error) {
	switch t {
	case command.CreateSimulatorSession:
		return c.createSession(ctx, params)
	case command.TerminateSimulatorSession:
		return c.terminateSession(ctx)
	case command.ListAvailableSimulators:
		return c.listTargets(ctx, false)
	case command.ListBootedSimulators:
		return c.listTargets(ctx, true)
	case command.BootSimulator:
		return c.boot(ctx, params)
	case command.ShutdownSimulator:
		return c.shutdown(ctx, params)
	case command.FocusSimulator:
		return c.run(ctx, "focus")

	case command.InstallApp:
		return c.installApp(ctx, params)
	case command.LaunchApp:
		return c.run(ctx, "launch", stringParam(params, "bundleId"))
	case command.TerminateApp:
		return c.run(ctx, "terminate", stringParam(params, "bundleId"))
	case command.UninstallApp:
		return c.run(ctx, "uninstall", stringParam(params, "bundleId"))
	case command.ListApps:
		return c.listApps(ctx)

	case command.Tap:
		return c.run(ctx, "ui", "tap", numArg(params, "x"), numArg(params, "y"))
	case command.Swipe:
		return c.swipe(ctx, params)
	case command.PressButton:
		return c.run(ctx, "ui", "button", buttonName(stringParam(params, "button")))
	case command.InputText:
		return c.run(ctx, "ui", "text", stringParam(params, "text"))
	case command.PressKey:
		return c.run(ctx, "ui", "key", numArg(params, "keycode"))

	case command.DescribeElements:
		return c.describe(ctx, "ui", "describe-all", "--json")
	case command.DescribePoint:
		return c.describe(ctx, "ui", "describe-point", "--json", numArg(params, "x"), numArg(params, "y"))

	case command.TakeScreenshot:
		return c.screenshot(ctx, params)
	case command.RecordVideo:
		return c.startRecording(ctx, params)
	case command.StopRecording:
		return c.stopRecording()
	case command.GetLogs:
		return c.getLogs(ctx, params)

	case command.StartDebug:
		return c.run(ctx, "debugserver", "start", stringParam(params, "bundleId"))
	case command.StopDebug:
		return c.run(ctx, "debugserver", "stop")
	case command.DebugStatus:
		return c.run(ctx, "debugserver", "status")
	case command.ListCrashLogs:
		return c.run(ctx, "crash", "list")
	case command.ShowCrashLog:
		return c.run(ctx, "crash", "show", stringParam(params, "name"))
	case command.DeleteCrashLogs:
		return c.run(ctx, "crash", "delete", "--all")

	case command.OpenURL:
		return c.run(ctx, "open", stringParam(params, "url"))
	case command.SetLocation:
		return c.run(ctx, "set-location", numArg(params, "latitude"), numArg(params, "longitude"))
	case command.AddMedia:
		return c.addMedia(ctx, params)
	case command.ApprovePermissions:
		return c.run(ctx, "approve", stringParam(params, "bundleId"), "photos", "camera", "contacts", "location", "notifications")
	case command.ClearKeychain:
		return c.run(ctx, "clear-keychain")
	case command.InstallDylib:
		return c.run(ctx, "dylib", "install", expandHome(stringParam(params, "dylibPath")))

	case command.VerifyAppInstalled:
		return c.verifyInstalled(ctx, stringParam(params, "bundleId"))
	case command.VerifySimulatorBooted:
		return c.verifyBooted(ctx)
	}

	return nil, command.NewHookError(command.ErrCommandNotFound, "no backend operation for command type %q", t)
}

// run invokes idb with the session's --udid flag appended when a target
// is known.
func (c *Client) run(ctx context.Context, args ...string) (any, error) {
	full := args
	if udid := c.currentUDID(); udid != "" {
		full = append(append([]string{}, args...), "--udid", udid)
	}

	start := time.Now()
	out, err := c.runner.Run(ctx, c.bin, full...)
	if err != nil {
		return nil, fmt.Errorf("idb %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}

	c.log.TimedEvent("idb_call", start, map[string]interface{}{
		"subcommand": args[0],
	})
	return strings.TrimSpace(string(out)), nil
}

// runJSON invokes idb keeping stdout apart from stderr, so JSON output
// is parsed without progress noise mixed in.
func (c *Client) runJSON(ctx context.Context, args ...string) ([]byte, error) {
	full := args
	if udid := c.currentUDID(); udid != "" {
		full = append(append([]string{}, args...), "--udid", udid)
	}

	start := time.Now()
	stdout, stderr, err := c.runner.RunSeparate(ctx, c.bin, full...)
	if err != nil {
		return nil, fmt.Errorf("idb %s: %w: %s", args[0], err, strings.TrimSpace(string(stderr)))
	}

	c.log.TimedEvent("idb_call", start, map[string]interface{}{
		"subcommand": args[0],
	})
	return stdout, nil
}

func (c *Client) currentUDID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return c.session.UDID
	}
	return config.Env().UDID
}

func (c *Client) createSession(ctx context.Context, params map[string]any) (any, error) {
	targets, err := c.fetchTargets(ctx)
	if err != nil {
		return nil, err
	}

	target, err := pickTarget(targets, stringParam(params, "deviceName"))
	if err != nil {
		return nil, err
	}

	autoboot := true
	if b, ok := params["autoboot"].(bool); ok {
		autoboot = b
	}
	if autoboot && !strings.EqualFold(target.State, "Booted") {
		if _, err := c.runner.Run(ctx, c.bin, "boot", target.UDID); err != nil {
			return nil, fmt.Errorf("boot %s: %w", target.UDID, err)
		}
	}

	session := &Session{
		ID:   ulid.Make().String(),
		UDID: target.UDID,
		Name: target.Name,
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.log.Info("session_created", map[string]interface{}{
		"session": session.ID,
		"udid":    session.UDID,
		"name":    session.Name,
	})
	return session, nil
}

func (c *Client) terminateSession(ctx context.Context) (any, error) {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.mu.Unlock()

	if session == nil {
		return nil, fmt.Errorf("no active session")
	}

	if out, err := c.runner.Run(ctx, c.bin, "shutdown", session.UDID); err != nil {
		return nil, fmt.Errorf("shutdown %s: %w: %s", session.UDID, err, strings.TrimSpace(string(out)))
	}

	c.log.Info("session_terminated", map[string]interface{}{
		"session": session.ID,
	})
	return session, nil
}

// CurrentSession returns the active session, or nil.
func (c *Client) CurrentSession() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Client) fetchTargets(ctx context.Context) ([]Target, error) {
	out, stderr, err := c.runner.RunSeparate(ctx, c.bin, "list-targets", "--json")
	if err != nil {
		return nil, fmt.Errorf("list-targets: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	// idb emits one JSON object per line.
	var targets []Target
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var t Target
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			continue
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func (c *Client) listTargets(ctx context.Context, bootedOnly bool) (any, error) {
	targets, err := c.fetchTargets(ctx)
	if err != nil {
		return nil, err
	}
	if !bootedOnly {
		return targets, nil
	}

	booted := make([]Target, 0, len(targets))
	for _, t := range targets {
		if strings.EqualFold(t.State, "Booted") {
			booted = append(booted, t)
		}
	}
	return booted, nil
}

// pickTarget selects a simulator by name. An empty name selects the
// first booted simulator, falling back to the first simulator at all.
func pickTarget(targets []Target, name string) (Target, error) {
	if len(targets) == 0 {
		return Target{}, fmt.Errorf("no simulators available")
	}

	if name != "" {
		lower := strings.ToLower(name)
		for _, t := range targets {
			if strings.Contains(strings.ToLower(t.Name), lower) {
				return t, nil
			}
		}
		return Target{}, fmt.Errorf("no simulator matches %q", name)
	}

	for _, t := range targets {
		if strings.EqualFold(t.State, "Booted") {
			return t, nil
		}
	}
	return targets[0], nil
}

func (c *Client) boot(ctx context.Context, params map[string]any) (any, error) {
	udid := stringParam(params, "udid")
	if udid == "" {
		udid = c.currentUDID()
	}
	if udid == "" {
		return nil, fmt.Errorf("no simulator selected: pass a udid or create a session first")
	}

	if out, err := c.runner.Run(ctx, c.bin, "boot", udid); err != nil {
		return nil, fmt.Errorf("boot %s: %w: %s", udid, err, strings.TrimSpace(string(out)))
	}
	return udid, nil
}

func (c *Client) shutdown(ctx context.Context, params map[string]any) (any, error) {
	udid := stringParam(params, "udid")
	if udid == "" {
		udid = c.currentUDID()
	}
	if udid == "" {
		return nil, fmt.Errorf("no simulator selected: pass a udid or create a session first")
	}

	if out, err := c.runner.Run(ctx, c.bin, "shutdown", udid); err != nil {
		return nil, fmt.Errorf("shutdown %s: %w: %s", udid, err, strings.TrimSpace(string(out)))
	}
	return udid, nil
}

// installApp resolves the app path, expanding ~ and glob patterns, then
// installs every matching bundle.
func (c *Client) installApp(ctx context.Context, params map[string]any) (any, error) {
	pattern := expandHome(stringParam(params, "appPath"))
	if pattern == "" {
		return nil, command.MissingParameter("appPath")
	}

	paths := []string{pattern}
	if containsGlob(pattern) {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad app path pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no app bundle matches %q", pattern)
		}
		paths = matches
	}

	installed := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := c.run(ctx, "install", p); err != nil {
			return nil, err
		}
		installed = append(installed, p)
	}
	return installed, nil
}

func (c *Client) listApps(ctx context.Context) (any, error) {
	out, err := c.runJSON(ctx, "list-apps", "--json")
	if err != nil {
		return nil, err
	}

	var apps []App
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var a App
		if err := json.Unmarshal([]byte(line), &a); err != nil {
			continue
		}
		apps = append(apps, a)
	}
	return apps, nil
}

func (c *Client) swipe(ctx context.Context, params map[string]any) (any, error) {
	args := []string{"ui", "swipe",
		numArg(params, "x1"), numArg(params, "y1"),
		numArg(params, "x2"), numArg(params, "y2"),
	}
	if _, ok := params["duration"]; ok {
		args = append(args, "--duration", numArg(params, "duration"))
	}
	return c.run(ctx, args...)
}

func (c *Client) describe(ctx context.Context, args ...string) (any, error) {
	out, err := c.runJSON(ctx, args...)
	if err != nil {
		return nil, err
	}

	// Pass structured output through when it parses, raw text otherwise.
	var parsed any
	if json.Unmarshal(out, &parsed) == nil {
		return parsed, nil
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *Client) screenshot(ctx context.Context, params map[string]any) (any, error) {
	path := expandHome(stringParam(params, "outputPath"))
	if path == "" {
		if err := config.EnsureDir(config.GetPaths().Captures); err != nil {
			return nil, fmt.Errorf("create captures dir: %w", err)
		}
		path = filepath.Join(config.GetPaths().Captures, fmt.Sprintf("shot-%s.png", ulid.Make()))
	}

	if _, err := c.run(ctx, "screenshot", path); err != nil {
		return nil, err
	}
	return path, nil
}

func (c *Client) startRecording(ctx context.Context, params map[string]any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recording != nil {
		return nil, fmt.Errorf("a recording is already running: %s", c.recPath)
	}

	path := expandHome(stringParam(params, "outputPath"))
	if path == "" {
		if err := config.EnsureDir(config.GetPaths().Captures); err != nil {
			return nil, fmt.Errorf("create captures dir: %w", err)
		}
		path = filepath.Join(config.GetPaths().Captures, fmt.Sprintf("rec-%s.mp4", ulid.Make()))
	}

	args := []string{"record-video", path}
	if c.session != nil {
		args = append(args, "--udid", c.session.UDID)
	}

	// Recording runs until stopped; detach from the caller's context so
	// it survives the instruction that started it.
	cmd, err := c.runner.Start(context.WithoutCancel(ctx), c.bin, args...)
	if err != nil {
		return nil, fmt.Errorf("record-video: %w", err)
	}

	c.recording = cmd
	c.recPath = path
	c.log.Info("recording_started", map[string]interface{}{"path": path})
	return path, nil
}

func (c *Client) stopRecording() (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recording == nil {
		return nil, fmt.Errorf("no recording in progress")
	}

	cmd := c.recording
	path := c.recPath
	c.recording = nil
	c.recPath = ""

	if cmd.Process != nil {
		// idb finalizes the file on SIGINT.
		_ = cmd.Process.Signal(os.Interrupt)
		_ = cmd.Wait()
	}

	c.log.Info("recording_stopped", map[string]interface{}{"path": path})
	return path, nil
}

func (c *Client) getLogs(ctx context.Context, params map[string]any) (any, error) {
	args := []string{"log", "--timeout", "5"}
	if b := stringParam(params, "bundleId"); b != "" {
		args = append(args, "--", "--predicate", fmt.Sprintf("subsystem == %q", b))
	}
	return c.run(ctx, args...)
}

func (c *Client) addMedia(ctx context.Context, params map[string]any) (any, error) {
	pattern := expandHome(stringParam(params, "mediaPath"))
	if pattern == "" {
		return nil, command.MissingParameter("mediaPath")
	}

	paths := []string{pattern}
	if containsGlob(pattern) {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad media pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no media matches %q", pattern)
		}
		paths = matches
	}

	return c.run(ctx, append([]string{"add-media"}, paths...)...)
}

func (c *Client) verifyInstalled(ctx context.Context, bundleID string) (any, error) {
	apps, err := c.listApps(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range apps.([]App) {
		if strings.EqualFold(a.BundleID, bundleID) {
			return map[string]any{"installed": true, "bundleId": bundleID}, nil
		}
	}
	return map[string]any{"installed": false, "bundleId": bundleID}, nil
}

func (c *Client) verifyBooted(ctx context.Context) (any, error) {
	targets, err := c.fetchTargets(ctx)
	if err != nil {
		return nil, err
	}

	udid := c.currentUDID()
	for _, t := range targets {
		if udid != "" && !strings.EqualFold(t.UDID, udid) {
			continue
		}
		if strings.EqualFold(t.State, "Booted") {
			return map[string]any{"booted": true, "udid": t.UDID}, nil
		}
	}
	return map[string]any{"booted": false, "udid": udid}, nil
}

// spanishButtons maps Spanish hardware button names onto idb's.
var spanishButtons = map[string]string{
	"bloqueo": "LOCK",
	"lateral": "SIDE_BUTTON",
}

func buttonName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := spanishButtons[lower]; ok {
		return mapped
	}
	switch lower {
	case "side button":
		return "SIDE_BUTTON"
	case "apple pay", "applepay":
		return "APPLE_PAY"
	}
	return strings.ToUpper(lower)
}

func stringParam(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// numArg renders a numeric parameter as an idb argument. Whole numbers
// print without a decimal point.
func numArg(params map[string]any, key string) string {
	switch v := params[key].(type) {
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	case string:
		return v
	}
	return ""
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
