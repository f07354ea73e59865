package generator

import (
	"fmt"

	"contentforge/internal/domain"
)

var musicKeys = []string{"Am", "C", "G", "F", "Dm", "Em", "A", "D"}

var chordProgressions = [][]string{
	{"Am", "F", "C", "G"},
	{"C", "Am", "F", "G"},
	{"G", "Em", "C", "D"},
	{"Am", "Dm", "G", "C"},
	{"F", "C", "G", "Am"},
}

var musicSections = []string{"intro", "verse", "chorus", "bridge", "outro"}

var tempoByMood = map[string]int{
	"happy":  120,
	"serene": 80,
	"epic":   140,
	"sad":    70,
}

var thJingleTags = []string{"จดจำได้ง่าย", "น่าจดจำ", "ติดหู"}
var enJingleTags = []string{"easy to remember", "memorable", "catchy"}

// Music renders a deterministic production plan: key, tempo, chord
// progression, section layout, and mood-appropriate production notes.
func Music(in domain.GenerateInput) *domain.GeneratedBundle {
	seed, n := deriveSeed(in)
	isThai := in.Language != "en"

	opts := in.Music
	if opts == nil {
		opts = &domain.MusicOptions{}
	}
	task := opts.Task
	if task == "" {
		task = "bgm"
	}
	mood := opts.Mood
	if mood == "" {
		mood = "happy"
	}
	tempo := opts.TempoBPM
	if tempo == 0 {
		tempo = tempoByMood[mood]
		if tempo == 0 {
			tempo = 100
		}
	}
	duration := opts.DurationSec
	if duration == 0 {
		duration = 30
	}
	style := opts.Style
	if style == "" {
		if isThai {
			style = "ไทยร่วมสมัย"
		} else {
			style = "modern"
		}
	}

	key := pick(musicKeys, n)
	progression := pick(chordProgressions, n)

	sectionCount := duration/8 + 1
	if sectionCount > 4 {
		sectionCount = 4
	}
	sections := musicSections[:sectionCount]

	var lyrics string
	if task == "jingle" {
		tag := pick(enJingleTags, n)
		if isThai {
			tag = pick(thJingleTags, n)
		}
		lyrics = fmt.Sprintf("%s\n%s\n\n%s", in.Topic, in.Objective, tag)
	}

	notes := productionNotes(mood, isThai)
	if isThai {
		notes = append(notes, "คีย์: "+key, fmt.Sprintf("จังหวะ: %d BPM", tempo), "สไตล์: "+style)
	} else {
		notes = append(notes, "Key: "+key, fmt.Sprintf("Tempo: %d BPM", tempo), "Style: "+style)
	}
	if opts.ReferenceLink != "" {
		if isThai {
			notes = append(notes, fmt.Sprintf("อ้างอิง: %s (ไม่ดึงข้อมูลภายนอก)", opts.ReferenceLink))
		} else {
			notes = append(notes, fmt.Sprintf("Reference: %s (not fetched)", opts.ReferenceLink))
		}
	}

	return &domain.GeneratedBundle{
		Music: &domain.MusicPlan{
			Task: task,
			Mood: mood,
			Structure: domain.MusicStructure{
				Key:              key,
				TempoBPM:         tempo,
				ChordProgression: progression,
				Sections:         sections,
			},
			Lyrics:          lyrics,
			ProductionNotes: notes,
		},
		Meta: domain.OutputMeta{DeterministicSeed: seed},
	}
}

func productionNotes(mood string, isThai bool) []string {
	if isThai {
		switch mood {
		case "epic":
			return []string{"ใช้เครื่องดนตรีที่มีพลัง เช่น กลอง, ทรัมเป็ต"}
		case "serene":
			return []string{"ใช้เครื่องดนตรีเบา เช่น เปียโน, ไวโอลิน"}
		case "happy":
			return []string{"ใช้เครื่องดนตรีที่มีจังหวะ เช่น กีตาร์, เปียโน"}
		case "sad":
			return []string{"ใช้เครื่องดนตรีโทนต่ำ เช่น เชลโล, เปียโน"}
		}
		return nil
	}
	switch mood {
	case "epic":
		return []string{"Use powerful instruments such as drums and trumpets"}
	case "serene":
		return []string{"Use light instruments such as piano and violin"}
	case "happy":
		return []string{"Use rhythmic instruments such as guitar and piano"}
	case "sad":
		return []string{"Use low-register instruments such as cello and piano"}
	}
	return nil
}
