package main

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = dm.DebugMsgs[:0]
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	for _, msg := range dm.DebugMsgs {
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(" : ")
		dm.builder.WriteString(msg.Value)
		dm.builder.WriteString("\n")
	}

	ebu.DebugPrint(dst, dm.builder.String())
}
