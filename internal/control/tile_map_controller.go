package control

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/control/action"
	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
)

// HistoryLimit is the number of edits that can be undone.
const HistoryLimit = 256

// Named is a model that has a name.
type Named interface {
	model.Model
	Name() string
	SetName(name string)
}

// TileMapController carries out the edits of tile maps: adding and removing
// maps, layers and palette tiles, and painting cells.
// Painting is undoable.
type TileMapController struct {
	signal.Signals

	registry *factory.Registry
	history  *action.History

	log zerolog.Logger
}

// NewTileMapController returns a tile map controller working on r.
func NewTileMapController(r *factory.Registry) *TileMapController {
	c := &TileMapController{
		registry: r,
		history:  action.NewHistory(HistoryLimit),
		log:      log.With().Str("component", "tile-map-controller").Logger(),
	}
	c.AddSignal(OpProjectOpened, func(*signal.EventArgs) {
		c.history.Clear()
	})
	c.BindUpdate(func(e *signal.EventArgs) {
		c.log.Trace().Str("op", string(e.OperationName())).Msg("update")
	})
	return c
}

// Kind returns KindTileMapController.
func (c *TileMapController) Kind() factory.Kind { return KindTileMapController }

func (c *TileMapController) modified() {
	notify(c.registry, c, KindProjectController, OpModified)
}

func (c *TileMapController) project(models *model.Factory) (*model.ProjectModel, error) {
	m, ok := models.Get(model.KindProject)
	if !ok {
		return nil, ErrNoProject
	}
	p, ok := m.(*model.ProjectModel)
	if !ok {
		return nil, ErrNoProject
	}
	return p, nil
}

// AddTileMap adds an empty tile map of the given name and size to the open
// project.
func (c *TileMapController) AddTileMap(name string, rows, columns int) (*model.TileMapModel, error) {
	models, err := modelFactory(c.registry)
	if err != nil {
		return nil, err
	}
	project, err := c.project(models)
	if err != nil {
		return nil, err
	}

	created, err := models.Create(model.KindTileMap, false)
	if err != nil {
		return nil, err
	}
	m := created.(*model.TileMapModel)
	m.SetName(name)
	m.SetSize(rows, columns)
	project.AddTileMap(m)

	c.log.Debug().Str("name", name).Msg("added tile map")
	c.modified()
	return m, nil
}

// RemoveTileMap removes m, with its layers and tiles, from the project.
func (c *TileMapController) RemoveTileMap(m *model.TileMapModel) error {
	models, err := modelFactory(c.registry)
	if err != nil {
		return err
	}
	models.MulticastSignalListeners(model.KindProject, signal.NewEventArgs(m, model.OpTileMapRemoved))
	for _, l := range m.Layers() {
		models.Remove(l)
	}
	for _, t := range m.Tiles() {
		models.Remove(t)
	}
	models.Remove(m)

	c.history.Clear()
	c.modified()
	return nil
}

// Rename renames the model.
func (c *TileMapController) Rename(m Named, name string) {
	if m.Name() == name {
		return
	}
	m.SetName(name)
	c.modified()
}

// Resize resizes the map and its layers; cells outside the new size are
// lost.
func (c *TileMapController) Resize(m *model.TileMapModel, rows, columns int) {
	if m.Rows() == rows && m.Columns() == columns {
		return
	}
	m.SetSize(rows, columns)
	c.history.Clear()
	c.modified()
}

// AddLayer puts a new, empty layer of the given name on top of m's layers.
func (c *TileMapController) AddLayer(m *model.TileMapModel, name string) (*model.TileLayerModel, error) {
	models, err := modelFactory(c.registry)
	if err != nil {
		return nil, err
	}
	created, err := models.Create(model.KindTileLayer, false)
	if err != nil {
		return nil, err
	}
	l := created.(*model.TileLayerModel)
	l.SetName(name)
	m.AddLayer(l)

	c.modified()
	return l, nil
}

// RemoveLayer removes l from whichever map holds it and disposes it.
func (c *TileMapController) RemoveLayer(l *model.TileLayerModel) error {
	models, err := modelFactory(c.registry)
	if err != nil {
		return err
	}
	models.MulticastSignalListeners(model.KindTileMap, signal.NewEventArgs(l, model.OpLayerRemoved))
	models.Remove(l)

	c.history.Clear()
	c.modified()
	return nil
}

// SetLayerVisible shows or hides l.
func (c *TileMapController) SetLayerVisible(l *model.TileLayerModel, visible bool) {
	if l.Visible() == visible {
		return
	}
	l.SetVisible(visible)
	c.modified()
}

// AddTile appends a new tile of the given name and color to m's palette.
func (c *TileMapController) AddTile(m *model.TileMapModel, name, color string) (*model.TileModel, error) {
	models, err := modelFactory(c.registry)
	if err != nil {
		return nil, err
	}
	created, err := models.Create(model.KindTile, false)
	if err != nil {
		return nil, err
	}
	t := created.(*model.TileModel)
	t.SetName(name)
	t.SetColor(color)
	m.AddTile(t)

	c.modified()
	return t, nil
}

// RemoveTile removes t from the palette of whichever map holds it, empties
// every cell painted with it and disposes it.
func (c *TileMapController) RemoveTile(t *model.TileModel) error {
	models, err := modelFactory(c.registry)
	if err != nil {
		return err
	}
	e := signal.NewEventArgs(t, model.OpTileRemoved)
	models.MulticastSignalListeners(model.KindTileMap, e)
	models.MulticastSignalListeners(model.KindTileLayer, e)
	models.Remove(t)

	c.history.Clear()
	c.modified()
	return nil
}

// Paint paints the cell of l at the given position with t; a nil t empties
// the cell.
func (c *TileMapController) Paint(l *model.TileLayerModel, row, col int, t *model.TileModel) error {
	prev, ok := l.Cell(row, col)
	if !ok {
		return fmt.Errorf("cell %d:%d out of bounds of layer '%s'", row, col, l.Name())
	}
	next := uuid.Nil
	explanation := fmt.Sprintf("clear %d:%d on '%s'", row, col, l.Name())
	if t != nil {
		next = t.UUID()
		explanation = fmt.Sprintf("paint %d:%d on '%s' with '%s'", row, col, l.Name(), t.Name())
	}
	if prev == next {
		return nil
	}

	c.history.Perform(action.NewReversible(explanation,
		func() { c.paint(l, row, col, next) },
		func() { c.paint(l, row, col, prev) },
	))
	c.modified()
	return nil
}

// Fill paints every cell of l with t; a nil t empties the layer.
func (c *TileMapController) Fill(l *model.TileLayerModel, t *model.TileModel) {
	next := uuid.Nil
	explanation := fmt.Sprintf("clear layer '%s'", l.Name())
	if t != nil {
		next = t.UUID()
		explanation = fmt.Sprintf("fill layer '%s' with '%s'", l.Name(), t.Name())
	}
	prev := cells(l)

	c.history.Perform(action.NewReversible(explanation,
		func() { l.Fill(next) },
		func() { c.restore(l, prev) },
	))
	c.modified()
}

// Undo reverts the most recent paint or fill and returns its explanation;
// false if there is nothing to undo.
func (c *TileMapController) Undo() (string, bool) {
	a := c.history.Undo()
	if a == nil {
		return "", false
	}
	c.modified()
	return a.Explain(), true
}

// Undoable returns the number of edits that can be undone.
func (c *TileMapController) Undoable() int { return c.history.Len() }

func cells(l *model.TileLayerModel) [][]uuid.UUID {
	result := make([][]uuid.UUID, l.Rows())
	for row := range result {
		result[row] = make([]uuid.UUID, l.Columns())
		for col := range result[row] {
			result[row][col], _ = l.Cell(row, col)
		}
	}
	return result
}

// paint paints a cell from within an edit's closures, where the cell was
// in bounds when the edit was recorded.
func (c *TileMapController) paint(l *model.TileLayerModel, row, col int, id uuid.UUID) {
	if err := l.Paint(row, col, id); err != nil {
		c.log.Error().Err(err).Str("layer", l.Name()).Msg("could not repaint cell")
	}
}

// restore paints l's cells as they were, announcing the change once.
func (c *TileMapController) restore(l *model.TileLayerModel, cells [][]uuid.UUID) {
	l.SetSuppressUpdates(true)
	for row := range cells {
		for col, id := range cells[row] {
			c.paint(l, row, col, id)
		}
	}
	l.SetSuppressUpdates(false)
	l.DoneUpdating(model.OpCellsChanged)
}
