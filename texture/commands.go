package texture

import (
	"slices"

	"github.com/templeblock/gl4es"
)

// Recorder is the command-list recorder a Context hands calls to while a
// list is being composed.
type Recorder interface {
	// Composing reports whether a list is being composed.
	Composing() bool

	// ContinueOrExtend is called before a binding or unit selection is
	// recorded. A recorder whose current segment already holds a texture
	// binding starts a new segment.
	ContinueOrExtend()

	// Record appends cmd to the list.
	Record(cmd Command)
}

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdBindTexture         CommandType = iota // Bind a texture to the active unit
	CmdActiveTexture                          // Select the server unit
	CmdClientActiveTexture                    // Select the client unit
	CmdTexParameter                           // Set a texture parameter
	CmdDeleteTextures                         // Delete textures
)

var commandTypeNames = [...]string{
	CmdBindTexture:         "BindTexture",
	CmdActiveTexture:       "ActiveTexture",
	CmdClientActiveTexture: "ClientActiveTexture",
	CmdTexParameter:        "TexParameter",
	CmdDeleteTextures:      "DeleteTextures",
}

// String returns the string representation of a CommandType.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is a recorded texture call.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BindTextureCommand binds Name to Target on the active unit.
type BindTextureCommand struct {
	Target gl4es.Enum
	Name   uint32
}

// Type implements Command.
func (BindTextureCommand) Type() CommandType { return CmdBindTexture }

// ActiveTextureCommand selects the server unit.
type ActiveTextureCommand struct {
	// Unit is TEXTURE0+i.
	Unit gl4es.Enum
}

// Type implements Command.
func (ActiveTextureCommand) Type() CommandType { return CmdActiveTexture }

// ClientActiveTextureCommand selects the client unit.
type ClientActiveTextureCommand struct {
	// Unit is TEXTURE0+i.
	Unit gl4es.Enum
}

// Type implements Command.
func (ClientActiveTextureCommand) Type() CommandType { return CmdClientActiveTexture }

// TexParameterCommand sets an integer texture parameter.
type TexParameterCommand struct {
	Target gl4es.Enum
	Pname  gl4es.Enum
	Param  int32
}

// Type implements Command.
func (TexParameterCommand) Type() CommandType { return CmdTexParameter }

// DeleteTexturesCommand deletes the named textures.
type DeleteTexturesCommand struct {
	Names []uint32
}

// Type implements Command.
func (DeleteTexturesCommand) Type() CommandType { return CmdDeleteTextures }

// Execute runs a recorded command against the context. It never records.
func (c *Context) Execute(cmd Command) {
	switch cmd := cmd.(type) {
	case BindTextureCommand:
		c.bindTexture(cmd.Target, cmd.Name)
	case ActiveTextureCommand:
		c.activeTexture(AxisServer, cmd.Unit)
	case ClientActiveTextureCommand:
		c.activeTexture(AxisClient, cmd.Unit)
	case TexParameterCommand:
		c.texParameteri(cmd.Target, cmd.Pname, cmd.Param)
	case DeleteTexturesCommand:
		c.deleteTextures(cmd.Names)
	default:
		gl4es.Logger().Debug("texture: unknown command", "type", cmd.Type())
	}
}

// BindTexture binds name to the active server unit, creating the texture
// object on first use. Name 0 unbinds.
func (c *Context) BindTexture(target gl4es.Enum, name uint32) {
	if c.composing() {
		c.recorder.ContinueOrExtend()
		c.recorder.Record(BindTextureCommand{Target: target, Name: name})
		return
	}
	c.bindTexture(target, name)
}

func (c *Context) bindTexture(target gl4es.Enum, name uint32) {
	c.store.BindOrCreate(name, target)
	c.units.Bind(AxisServer, name, target == gl4es.TEXTURE_RECTANGLE)
	c.target.BindTexture(mapTarget(target), name)
}

// ActiveTexture selects the server unit; unit is TEXTURE0+i. Units out of
// range are ignored.
func (c *Context) ActiveTexture(unit gl4es.Enum) {
	if c.composing() {
		c.recorder.ContinueOrExtend()
		c.recorder.Record(ActiveTextureCommand{Unit: unit})
		return
	}
	c.activeTexture(AxisServer, unit)
}

// ClientActiveTexture selects the client unit; unit is TEXTURE0+i. Units
// out of range are ignored.
func (c *Context) ClientActiveTexture(unit gl4es.Enum) {
	if c.composing() {
		c.recorder.ContinueOrExtend()
		c.recorder.Record(ClientActiveTextureCommand{Unit: unit})
		return
	}
	c.activeTexture(AxisClient, unit)
}

func (c *Context) activeTexture(axis Axis, unit gl4es.Enum) {
	if unit < gl4es.TEXTURE0 || !c.units.SetActive(axis, int(unit-gl4es.TEXTURE0)) {
		return
	}
	if axis == AxisServer {
		c.target.ActiveTexture(unit)
	} else {
		c.target.ClientActiveTexture(unit)
	}
}

// TexParameteri sets an integer parameter of the bound texture. CLAMP,
// which GLES lacks, becomes CLAMP_TO_EDGE.
func (c *Context) TexParameteri(target, pname gl4es.Enum, param int32) {
	if c.composing() {
		c.recorder.Record(TexParameterCommand{Target: target, Pname: pname, Param: param})
		return
	}
	c.texParameteri(target, pname, param)
}

func (c *Context) texParameteri(target, pname gl4es.Enum, param int32) {
	if gl4es.Enum(param) == gl4es.CLAMP {
		param = int32(gl4es.CLAMP_TO_EDGE)
	}
	c.target.TexParameteri(mapTarget(target), pname, param)
}

// DeleteTextures deletes the named textures. Units bound to them become
// unbound. Unknown names are ignored by the context but still passed on.
func (c *Context) DeleteTextures(names []uint32) {
	if c.composing() {
		c.recorder.Record(DeleteTexturesCommand{Names: slices.Clone(names)})
		return
	}
	c.deleteTextures(names)
}

func (c *Context) deleteTextures(names []uint32) {
	for _, name := range names {
		if c.store.remove(name) {
			c.units.Clear(name)
		}
	}
	c.target.DeleteTextures(names)
}
