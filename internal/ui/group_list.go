package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fontdeck/fontdeck/internal/model"
)

// GroupList renders existing font groups with their resolved member names,
// a member count, and edit/delete actions per row. Membership is resolved
// against the canonical catalog at render time; deleted fonts show up as a
// placeholder instead of breaking the row.
type GroupList struct {
	widget.BaseWidget

	localization *Localization
	groups       []model.Group

	list *widget.List

	// resolve looks a member font up in the canonical catalog.
	resolve func(id string) (model.Font, bool)

	onEdit   func(groupID string)
	onDelete func(groupID string)
}

// NewGroupList creates the group list view.
func NewGroupList(localization *Localization, resolve func(string) (model.Font, bool), onEdit, onDelete func(string)) *GroupList {
	gl := &GroupList{
		localization: localization,
		resolve:      resolve,
		onEdit:       onEdit,
		onDelete:     onDelete,
	}
	gl.ExtendBaseWidget(gl)

	gl.list = widget.NewList(
		func() int { return len(gl.groups) },
		func() fyne.CanvasObject { return gl.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { gl.updateRow(id, obj) },
	)
	return gl
}

// SetGroups replaces the rendered snapshot and refreshes the list.
func (gl *GroupList) SetGroups(groups []model.Group) {
	gl.groups = groups
	gl.list.Refresh()
}

// groupRow is one line of the group table.
type groupRow struct {
	widget.BaseWidget

	titleLabel *widget.Label
	fontsLabel *widget.Label
	countLabel *widget.Label
	editBtn    *widget.Button
	deleteBtn  *widget.Button
	content    *fyne.Container

	groupID string
}

func (gl *GroupList) createRow() fyne.CanvasObject {
	row := &groupRow{}
	row.ExtendBaseWidget(row)

	row.titleLabel = widget.NewLabel("")
	row.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	row.titleLabel.Truncation = fyne.TextTruncateEllipsis

	row.fontsLabel = widget.NewLabel("")
	row.fontsLabel.Truncation = fyne.TextTruncateEllipsis

	row.countLabel = widget.NewLabel("")
	row.countLabel.Alignment = fyne.TextAlignTrailing

	row.editBtn = widget.NewButton(gl.localization.GetText(KeyEdit), func() {
		if row.groupID != "" && gl.onEdit != nil {
			gl.onEdit(row.groupID)
		}
	})

	row.deleteBtn = widget.NewButton(gl.localization.GetText(KeyDelete), func() {
		if row.groupID != "" && gl.onDelete != nil {
			gl.onDelete(row.groupID)
		}
	})
	row.deleteBtn.Importance = widget.DangerImportance

	actions := container.NewHBox(row.countLabel, row.editBtn, row.deleteBtn)
	row.content = container.NewBorder(nil, nil, row.titleLabel, actions, row.fontsLabel)
	return row
}

func (gl *GroupList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(gl.groups) {
		return
	}
	row, ok := obj.(*groupRow)
	if !ok {
		return
	}

	group := gl.groups[id]
	row.groupID = group.ID
	row.titleLabel.SetText(group.Title)
	row.countLabel.SetText(fmt.Sprintf(CountLabelFormat, len(group.Fonts)))
	row.editBtn.SetText(gl.localization.GetText(KeyEdit))
	row.deleteBtn.SetText(gl.localization.GetText(KeyDelete))

	if len(group.Fonts) == 0 {
		row.fontsLabel.SetText(gl.localization.GetText(KeyNoFonts))
	} else {
		names := group.FontNames(gl.resolve)
		row.fontsLabel.SetText(strings.Join(names, FontNameSeparator))
	}

	row.Refresh()
}

// CreateRenderer creates the widget renderer
func (gl *GroupList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(gl.list)
}

// CreateRenderer creates the widget renderer
func (r *groupRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// MinSize keeps the list usable inside the scrolling root layout.
func (gl *GroupList) MinSize() fyne.Size {
	min := gl.BaseWidget.MinSize()
	if min.Width < ListMinWidth {
		min.Width = ListMinWidth
	}
	if min.Height < ListMinHeight {
		min.Height = ListMinHeight
	}
	return min
}
