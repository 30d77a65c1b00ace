// Package tui is an interactive terminal front end for one user's todo list.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xyz-asif/todoservice/internal/features/todos"
)

// API is the subset of the REST client the terminal UI needs.
type API interface {
	List(ctx context.Context) ([]todos.Todo, error)
	Create(ctx context.Context, todo todos.Todo) (int64, error)
	Update(ctx context.Context, todo todos.Todo) (*todos.Todo, error)
	Delete(ctx context.Context, id int64) error
}

const requestTimeout = 10 * time.Second

type loadedMsg struct{ items []todos.Todo }

type changedMsg struct{ status string }

type errMsg struct{ err error }

// todoItem adapts a todo to bubbles/list.Item.
type todoItem struct {
	todo todos.Todo
}

func (i todoItem) Title() string       { return i.todo.Description }
func (i todoItem) Description() string { return formatDate(i.todo.TargetDate) }
func (i todoItem) FilterValue() string { return i.todo.Description }

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "no target date"
	}
	return t.Format("2006-01-02")
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Description
	if it.todo.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, text, mutedStyle.Render("#"+fmt.Sprint(it.todo.ID)+" "+it.Description()))
}

// Model is the Bubble Tea model driving the todo list.
type Model struct {
	api   API
	owner string

	list   list.Model
	input  textinput.Model
	adding bool

	status string
	err    error
	width  int
	height int
}

func New(api API, owner string) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render(owner + "'s todos")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return bindings }
	l.AdditionalFullHelpKeys = func() []key.Binding { return bindings }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Description [@ YYYY-MM-DD]"
	ti.CharLimit = 200

	return Model{api: api, owner: owner, list: l, input: ti}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(api API, owner string) error {
	_, err := tea.NewProgram(New(api, owner), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := api.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{items}
	}
}

func (m Model) mutate(status string, fn func(ctx context.Context, api API) error) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := fn(ctx, api); err != nil {
			return errMsg{err}
		}
		return changedMsg{status}
	}
}

func (m Model) selected() (todos.Todo, bool) {
	it, ok := m.list.SelectedItem().(todoItem)
	if !ok {
		return todos.Todo{}, false
	}
	return it.todo, true
}

// parseInput splits "description @ 2026-12-31" into a new todo.
func parseInput(raw string) (todos.Todo, error) {
	desc, date, hasDate := strings.Cut(raw, "@")
	todo := todos.Todo{Description: strings.TrimSpace(desc)}
	if todo.Description == "" {
		return todos.Todo{}, fmt.Errorf("description cannot be empty")
	}
	if hasDate {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
		if err != nil {
			return todos.Todo{}, fmt.Errorf("target date must be YYYY-MM-DD")
		}
		todo.TargetDate = t
	}
	return todo, nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, m.listHeight())
		return m, nil
	case loadedMsg:
		items := make([]list.Item, 0, len(msg.items))
		for _, t := range msg.items {
			items = append(items, todoItem{todo: t})
		}
		m.err = nil
		return m, m.list.SetItems(items)
	case changedMsg:
		m.status = msg.status
		m.err = nil
		return m, m.load()
	case errMsg:
		m.err = msg.err
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch km.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.status = "reloading"
			return m, m.load()
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			m.list.SetSize(m.width-4, m.listHeight())
			return m, textinput.Blink
		case " ":
			todo, ok := m.selected()
			if !ok {
				return m, nil
			}
			todo.Done = !todo.Done
			return m, m.mutate(fmt.Sprintf("updated #%d", todo.ID), func(ctx context.Context, api API) error {
				_, err := api.Update(ctx, todo)
				return err
			})
		case "d":
			todo, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, m.mutate(fmt.Sprintf("deleted #%d", todo.ID), func(ctx context.Context, api API) error {
				return api.Delete(ctx, todo.ID)
			})
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			todo, err := parseInput(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.adding = false
			m.input.Blur()
			m.list.SetSize(m.width-4, m.listHeight())
			return m, m.mutate("added", func(ctx context.Context, api API) error {
				_, err := api.Create(ctx, todo)
				return err
			})
		case "esc":
			m.adding = false
			m.err = nil
			m.input.Blur()
			m.list.SetSize(m.width-4, m.listHeight())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) listHeight() int {
	h := m.height - 4
	if m.adding {
		h -= 3
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) View() string {
	done, pending := 0, 0
	for _, it := range m.list.Items() {
		if t, ok := it.(todoItem); ok && t.todo.Done {
			done++
		} else {
			pending++
		}
	}
	header := fmt.Sprintf("%s %d  %s %d  %s %d",
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), done+pending,
	)

	content := header + "\n" + m.list.View()
	if m.adding {
		content += "\n" + panelStyle.Render("Add todo\n"+m.input.View())
	}
	switch {
	case m.err != nil:
		content += "\n" + errorStyle.Render("✖ "+m.err.Error())
	case m.status != "":
		content += "\n" + successStyle.Render("✔ "+m.status)
	}
	return panelStyle.Render(content)
}
