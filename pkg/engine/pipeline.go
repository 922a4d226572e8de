package engine

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineSet holds the two precompiled draw pipelines. They share one
// empty pipeline layout: no bound resources, no vertex buffers, vertices
// are synthesized in the shader from the vertex index.
type PipelineSet struct {
	color     *wgpu.RenderPipeline
	challenge *wgpu.RenderPipeline
}

// NewPipelineSet compiles both shader programs and builds the pipelines
// against the context's device and negotiated surface format, then
// registers them with the context for frame recording. A build failure
// here is fatal at startup.
func NewPipelineSet(ctx *GraphicsContext) (*PipelineSet, error) {
	layout, err := ctx.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "triangle layout",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline layout: %v", err)
	}
	defer layout.Release()

	color, err := buildPipeline(ctx, layout, "color pipeline", colorShaderSource)
	if err != nil {
		return nil, err
	}
	challenge, err := buildPipeline(ctx, layout, "challenge pipeline", challengeShaderSource)
	if err != nil {
		color.Release()
		return nil, err
	}

	ps := &PipelineSet{color: color, challenge: challenge}
	ctx.pipes = ps
	return ps, nil
}

// buildPipeline creates one graphics pipeline: triangle list, CCW front
// face, back-face culling, no depth/stencil, single sample, replace
// blending with all color channels written.
func buildPipeline(ctx *GraphicsContext, layout *wgpu.PipelineLayout, label, src string) (*wgpu.RenderPipeline, error) {
	shader, err := ctx.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader for %s: %v", label, err)
	}
	defer shader.Release()

	pipeline, err := ctx.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    ctx.config.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %v", label, err)
	}
	return pipeline, nil
}

// pipeline resolves the handle for a selector.
func (ps *PipelineSet) pipeline(kind PipelineKind) *wgpu.RenderPipeline {
	if kind == PipelineColor {
		return ps.color
	}
	return ps.challenge
}

// Release frees both pipelines.
func (ps *PipelineSet) Release() {
	if ps.color != nil {
		ps.color.Release()
		ps.color = nil
	}
	if ps.challenge != nil {
		ps.challenge.Release()
		ps.challenge = nil
	}
}
