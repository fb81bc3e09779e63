// Package glyphs binds the caster to the Glyphs source format: the schema of
// a .glyphs document, the defaults injected for absent interpolation values
// and the custom-parameter post-pass.
package glyphs

import (
	"sync"

	glyphscast "github.com/reoring/glyphscast"
	"github.com/reoring/glyphscast/codec"
)

// FontSchema returns the schema of a whole .glyphs document. It is built once
// and shared; callers must not modify it.
//
// Field list follows https://github.com/schriftgestalt/GlyphsSDK/blob/master/GlyphsFileFormat.md
// plus a few keys that appear in real files but are not documented there.
func FontSchema() glyphscast.Schema { return fontSchema() }

var fontSchema = sync.OnceValue(buildFontSchema)

var (
	str      = glyphscast.Convert(codec.String)
	integer  = glyphscast.Convert(codec.Int)
	truthy   = glyphscast.Convert(codec.Truthy)
	feature  = glyphscast.Convert(codec.FeatureSyntax)
	passthru = glyphscast.Convert(codec.Identity)
	datetime = glyphscast.Convert(codec.Datetime)
	dict     = glyphscast.Convert(codec.Dict)
)

func customParameters() glyphscast.Node {
	return glyphscast.Records(glyphscast.Schema{
		"name":  str,
		"value": passthru,
	})
}

func buildFontSchema() glyphscast.Schema {
	return glyphscast.Schema{
		"DisplayStrings": glyphscast.Convert(codec.List),
		"classes": glyphscast.Records(glyphscast.Schema{
			"automatic": truthy,
			"code":      feature,
			"name":      str,
		}),
		"copyright":                  str,
		"customParameters":           customParameters(),
		"date":                       datetime,
		"designer":                   str,
		"designerURL":                str,
		"disablesAutomaticAlignment": truthy, // undocumented
		"disablesNiceNames":          truthy, // undocumented
		"familyName":                 str,
		"featurePrefixes": glyphscast.Records(glyphscast.Schema{
			"code": feature,
			"name": str,
		}),
		"features": glyphscast.Records(glyphscast.Schema{
			"automatic": truthy,
			"code":      feature,
			"disabled":  truthy, // undocumented
			"name":      str,
			"notes":     feature, // undocumented
		}),
		"fontMaster":      fontMasterSchema(),
		"glyphs":          glyphSchema(),
		"instances":       instanceSchema(),
		"kerning":         glyphscast.Convert(codec.Kerning),
		"manufacturer":    str,
		"manufacturerURL": str,
		"unitsPerEm":      integer,
		"userData":        dict,
		"versionMajor":    integer,
		"versionMinor":    glyphscast.Convert(codec.VersionMinor),
	}
}

func fontMasterSchema() glyphscast.Node {
	return glyphscast.Records(glyphscast.Schema{
		"alignmentZones":   glyphscast.Convert(codec.PointList),
		"ascender":         integer,
		"capHeight":        integer,
		"customParameters": customParameters(),
		"descender":        glyphscast.Convert(codec.Descender),
		"horizontalStems":  glyphscast.Convert(codec.IntList),
		"id":               str,
		"userData":         dict,
		"verticalStems":    glyphscast.Convert(codec.IntList),
		"weight":           str, // undocumented
		"weightValue":      integer,
		"width":            str, // undocumented
		"widthValue":       integer,
		"xHeight":          integer,
	})
}

func glyphSchema() glyphscast.Node {
	return glyphscast.Records(glyphscast.Schema{
		"glyphname":         str,
		"lastChange":        datetime,
		"layers":            layerSchema(),
		"leftKerningGroup":  str,
		"leftMetricsKey":    str,
		"rightKerningGroup": str,
		"rightMetricsKey":   str,
		"unicode":           glyphscast.Convert(codec.HexInt),
		"widthMetricsKey":   str, // undocumented
	})
}

func layerSchema() glyphscast.Node {
	return glyphscast.Records(glyphscast.Schema{
		"anchors": glyphscast.Records(glyphscast.Schema{
			"name":     str,
			"position": glyphscast.Convert(codec.Point),
		}),
		"annotations":        passthru, // undocumented
		"associatedMasterId": str,
		"background":         passthru,
		"components": glyphscast.Records(glyphscast.Schema{
			"anchor":           str,
			"disableAlignment": truthy, // undocumented
			"locked":           truthy, // undocumented
			"name":             str,
			"transform":        glyphscast.Convert(codec.Transform),
		}),
		"guideLines":      passthru, // undocumented
		"hints":           passthru, // undocumented
		"layerId":         str,
		"leftMetricsKey":  str,
		"rightMetricsKey": str,
		"name":            str,
		"paths": glyphscast.Records(glyphscast.Schema{
			"closed": truthy,
			"nodes":  glyphscast.Convert(codec.NodeList),
		}),
		"width": glyphscast.Convert(codec.Num),
	})
}

func instanceSchema() glyphscast.Node {
	return glyphscast.Records(glyphscast.Schema{
		"customParameters":    customParameters(),
		"interpolationWeight": integer, // undocumented
		"interpolationWidth":  integer, // undocumented
		"name":                str,     // undocumented
		"weightClass":         str,     // undocumented
		"widthClass":          str,     // undocumented
	})
}
